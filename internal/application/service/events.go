package service

import "github.com/TemirB/grubdash/internal/domain"

//go:generate mockgen -source internal/application/service/events.go -destination=internal/application/service/events_mock_test.go -package=service

// Publisher receives an event after every successful mutation. Implementations
// must not block the caller.
type Publisher interface {
	Publish(ev domain.Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(domain.Event) {}
