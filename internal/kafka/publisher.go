package kafka

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/config"
	"github.com/TemirB/grubdash/internal/domain"
	"github.com/TemirB/grubdash/internal/observability"
	"github.com/TemirB/grubdash/internal/pkg/breaker"
	"github.com/TemirB/grubdash/internal/pkg/pool"
	"github.com/TemirB/grubdash/internal/pkg/retry"
)

const defaultWriteTimeout = 30 * time.Second

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

func NewWriter(cfg config.Kafka) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireOne,
	}
}

// Publisher writes events in the background. Each write is retried with
// backoff and skipped entirely while the breaker is open.
type Publisher struct {
	writer       Writer
	pool         *pool.Pool
	breaker      *breaker.Breaker
	retryPolicy  config.Retry
	metrics      observability.Metrics
	logger       *zap.Logger
	writeTimeout time.Duration
}

func NewPublisher(
	writer Writer,
	workers int,
	brk *breaker.Breaker,
	retryPolicy config.Retry,
	metrics observability.Metrics,
	logger *zap.Logger,
) *Publisher {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Publisher{
		writer:       writer,
		pool:         pool.New(workers),
		breaker:      brk,
		retryPolicy:  retryPolicy,
		metrics:      metrics,
		logger:       logger,
		writeTimeout: defaultWriteTimeout,
	}
}

// Publish hands ev to a worker and returns at once. When the publisher is
// closed or its queue is full the event is dropped and counted as a failure.
func (p *Publisher) Publish(ev domain.Event) {
	err := p.pool.TrySubmit(func() { _ = p.send(ev) })
	if err == nil {
		return
	}
	p.metrics.ObservePublish(0, false)
	p.logger.Warn("event dropped",
		zap.String("type", string(ev.Type)),
		zap.String("record_id", ev.RecordID),
		zap.Error(err),
	)
}

func (p *Publisher) send(ev domain.Event) error {
	start := time.Now()

	if err := p.breaker.Allow(); err != nil {
		p.logger.Warn("circuit breaker is open, event dropped",
			zap.String("type", string(ev.Type)),
			zap.String("record_id", ev.RecordID),
		)
		p.metrics.ObservePublish(0, false)
		return err
	}

	value, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("can't encode event", zap.String("type", string(ev.Type)), zap.Error(err))
		p.metrics.ObservePublish(0, false)
		return err
	}
	msg := kafkago.Message{
		Key:   []byte(ev.RecordID),
		Value: value,
		Time:  ev.At,
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.writeTimeout)
	defer cancel()

	err = retry.Do(ctx, p.retryPolicy, func() error {
		return p.writer.WriteMessages(ctx, msg)
	})
	durMs := observability.Ms(time.Since(start))
	if err != nil {
		p.breaker.Failure()
		p.metrics.ObservePublish(durMs, false)
		p.logger.Error("event publish failed after retries",
			zap.String("type", string(ev.Type)),
			zap.String("record_id", ev.RecordID),
			zap.Error(err),
		)
		return err
	}

	p.breaker.Success()
	p.metrics.ObservePublish(durMs, true)
	p.logger.Debug("event published",
		zap.String("type", string(ev.Type)),
		zap.String("record_id", ev.RecordID),
		zap.Int("value_bytes", len(value)),
		zap.Float64("publish_ms", durMs),
	)
	return nil
}

// Close drains queued events and closes the writer.
func (p *Publisher) Close() error {
	p.pool.Close()
	p.pool.Wait()
	return p.writer.Close()
}
