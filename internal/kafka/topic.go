package kafka

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/config"
)

const (
	dialTimeout       = 10 * time.Second
	topicReadyTimeout = 10 * time.Second
	topicPollInterval = 500 * time.Millisecond
)

var (
	errNoBrokers = errors.New("kafka: no brokers configured")
	errNoTopic   = errors.New("kafka: empty topic")
)

// EnsureTopic makes sure the events topic exists, creating it through the
// cluster controller when missing, and waits until its partitions are visible.
func EnsureTopic(ctx context.Context, cfg config.Kafka, logger *zap.Logger) error {
	if len(cfg.Brokers) == 0 {
		return errNoBrokers
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return errNoTopic
	}
	logger = logger.With(zap.String("topic", cfg.Topic))

	dialer := &kafkago.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers[0])
	if err != nil {
		return fmt.Errorf("kafka: dial %s: %w", cfg.Brokers[0], err)
	}
	defer conn.Close()

	if n := partitionCount(conn, cfg.Topic); n > 0 {
		logger.Debug("topic already present", zap.Int("partitions", n))
		return nil
	}

	logger.Info("creating topic",
		zap.Int("partitions", cfg.Partitions),
		zap.Int("replication", cfg.Replication),
	)
	if err := createTopic(ctx, dialer, conn, cfg); err != nil {
		return err
	}
	return waitForTopic(ctx, conn, cfg, logger)
}

func partitionCount(conn *kafkago.Conn, topic string) int {
	parts, err := conn.ReadPartitions(topic)
	if err != nil {
		return 0
	}
	return len(parts)
}

// createTopic issues CreateTopics on the controller; only it accepts them.
func createTopic(ctx context.Context, dialer *kafkago.Dialer, conn *kafkago.Conn, cfg config.Kafka) error {
	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("kafka: find controller: %w", err)
	}
	addr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))

	ctrl, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("kafka: dial controller %s: %w", addr, err)
	}
	defer ctrl.Close()

	err = ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     cfg.Partitions,
		ReplicationFactor: cfg.Replication,
	})
	if err != nil && !errors.Is(err, kafkago.TopicAlreadyExists) {
		return fmt.Errorf("kafka: create topic %s: %w", cfg.Topic, err)
	}
	return nil
}

func waitForTopic(ctx context.Context, conn *kafkago.Conn, cfg config.Kafka, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, topicReadyTimeout)
	defer cancel()

	tick := time.NewTicker(topicPollInterval)
	defer tick.Stop()
	for {
		if n := partitionCount(conn, cfg.Topic); n > 0 && n >= cfg.Partitions {
			logger.Info("topic ready", zap.Int("partitions", n))
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("kafka: topic %s not visible: %w", cfg.Topic, ctx.Err())
		case <-tick.C:
		}
	}
}
