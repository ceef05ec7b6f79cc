package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Kafka struct {
	Brokers     []string
	Topic       string
	Workers     int
	Partitions  int
	Replication int
}

func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Config struct {
	HTTPAddr        string
	LogMode         string
	SeedFile        string
	IdempotencyCap  int
	ShutdownTimeout time.Duration

	Kafka   Kafka
	Breaker Breaker
	Retry   Retry
}

const envFile = "env/.env"

const (
	LogModeDevelopment = "development"
	LogModeProduction  = "production"
)

// Load reads env/.env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load(envFile)
	return load()
}

func load() (Config, error) {
	cfg := Config{
		HTTPAddr:        envDefault("HTTP_ADDR", ":5000"),
		LogMode:         strings.ToLower(envDefault("LOG_MODE", LogModeDevelopment)),
		SeedFile:        strings.TrimSpace(os.Getenv("SEED_FILE")),
		IdempotencyCap:  envInt("IDEMPOTENCY_CACHE_CAP", 1000),
		ShutdownTimeout: envDurationMS("SHUTDOWN_TIMEOUT", 10*time.Second),

		Kafka: Kafka{
			Brokers:     splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:       strings.TrimSpace(envDefault("KAFKA_TOPIC", "grubdash.events")),
			Workers:     envInt("KAFKA_WORKERS", 4),
			Partitions:  envInt("KAFKA_PARTITIONS", 1),
			Replication: envInt("KAFKA_REPLICATION", 1),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 5),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 5*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.LogMode != LogModeDevelopment && c.LogMode != LogModeProduction {
		return &invalidEnvError{Key: "LOG_MODE", Value: c.LogMode}
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return &missingEnvError{Keys: []string{"KAFKA_TOPIC"}}
	}

	if c.IdempotencyCap <= 0 {
		log.Printf("IDEMPOTENCY_CACHE_CAP is %d, adjusting to 1", c.IdempotencyCap)
		c.IdempotencyCap = 1
	}
	if c.Kafka.Workers <= 0 {
		log.Printf("KAFKA_WORKERS is %d, adjusting to 1", c.Kafka.Workers)
		c.Kafka.Workers = 1
	}
	if c.Kafka.Partitions <= 0 {
		c.Kafka.Partitions = 1
	}
	if c.Kafka.Replication <= 0 {
		c.Kafka.Replication = 1
	}
	if c.Retry.Attempts <= 0 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts)
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

type invalidEnvError struct{ Key, Value string }

func (e *invalidEnvError) Error() string {
	return "invalid value for " + e.Key + ": " + strconv.Quote(e.Value)
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
