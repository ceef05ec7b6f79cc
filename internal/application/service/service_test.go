package service

import (
	"fmt"

	"github.com/golang/mock/gomock"

	"github.com/TemirB/grubdash/internal/domain"
)

type eventMatcher struct {
	typ domain.EventType
	id  string
}

// isEvent matches an event by type and, when id is non-empty, by record id.
func isEvent(typ domain.EventType, id string) gomock.Matcher {
	return eventMatcher{typ: typ, id: id}
}

func (m eventMatcher) Matches(x interface{}) bool {
	ev, ok := x.(domain.Event)
	if !ok {
		return false
	}
	return ev.Type == m.typ && (m.id == "" || ev.RecordID == m.id)
}

func (m eventMatcher) String() string {
	return fmt.Sprintf("event %s for %q", m.typ, m.id)
}
