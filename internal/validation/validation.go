// Package validation runs ordered field checks that stop at the first failure.
package validation

import (
	"math"

	"github.com/TemirB/grubdash/internal/domain"
)

type Check[T any] func(T) error

func Run[T any](in T, checks ...Check[T]) error {
	for _, check := range checks {
		if err := check(in); err != nil {
			return err
		}
	}
	return nil
}

// Required fails when field returns the zero value. The message is used as-is.
func Required[T any, V comparable](field func(T) V, msg string) Check[T] {
	return func(in T) error {
		var zero V
		if field(in) == zero {
			return domain.Invalidf("%s", msg)
		}
		return nil
	}
}

func PositiveInt[T any](field func(T) float64, msg string) Check[T] {
	return func(in T) error {
		if !IsPositiveInt(field(in)) {
			return domain.Invalidf("%s", msg)
		}
		return nil
	}
}

// MatchesID allows an empty body id; otherwise it must equal the route id.
func MatchesID[T any](bodyID func(T) string, routeID string, format string) Check[T] {
	return func(in T) error {
		if id := bodyID(in); id != "" && id != routeID {
			return domain.Invalidf(format, id, routeID)
		}
		return nil
	}
}

// MaxExactInt is the largest whole number a JSON number decodes to exactly.
const MaxExactInt = 1 << 53

// IsPositiveInt reports whether v is a whole number in [1, MaxExactInt], so it
// always converts to int without loss.
func IsPositiveInt(v float64) bool {
	return v > 0 && v <= MaxExactInt && v == math.Trunc(v)
}
