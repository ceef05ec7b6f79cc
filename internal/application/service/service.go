package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/observability"
)

type deps struct {
	events  Publisher
	logger  *zap.Logger
	metrics observability.Metrics
	newID   func(taken func(string) bool) string
}

func newDeps(events Publisher, logger *zap.Logger, metrics observability.Metrics) deps {
	if events == nil {
		events = NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return deps{
		events:  events,
		logger:  logger,
		metrics: metrics,
		newID:   uniqueID,
	}
}

// uniqueID returns a fresh UUID that the collection has never held.
func uniqueID(taken func(string) bool) string {
	for {
		id := uuid.NewString()
		if !taken(id) {
			return id
		}
	}
}

func (d deps) rejected(resource, op string, err error, fields ...zap.Field) {
	d.metrics.ObserveMutation(resource, op, false)
	d.logger.Info("Request rejected",
		append(fields,
			zap.String("resource", resource),
			zap.String("op", op),
			zap.Error(err),
		)...,
	)
}
