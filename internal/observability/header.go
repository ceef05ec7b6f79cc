package observability

import (
	"fmt"
	"net/http"
	"time"
)

func Ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

// AppendServerTiming adds one Server-Timing entry. Non-positive durations and
// empty descriptions are left out; an entry with neither is skipped.
func AppendServerTiming(w http.ResponseWriter, name string, dur time.Duration, desc string) {
	ms := Ms(dur)
	switch {
	case ms > 0 && desc != "":
		w.Header().Add("Server-Timing", fmt.Sprintf("%s;dur=%.2f;desc=%q", name, ms, desc))
	case ms > 0:
		w.Header().Add("Server-Timing", fmt.Sprintf("%s;dur=%.2f", name, ms))
	case desc != "":
		w.Header().Add("Server-Timing", fmt.Sprintf("%s;desc=%q", name, desc))
	}
}
