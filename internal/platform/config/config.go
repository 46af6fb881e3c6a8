package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration read from the environment so
// main stays lean.
type Server struct {
	Addr          string
	DatabaseURL   string
	JWTSigningKey string
	SessionTTL    time.Duration
	Redis         RedisConfig
	KafkaBrokers  []string
	AuditTopic    string
}

// RedisConfig configures the optional Redis connection. An empty URL means
// Redis is not configured and the in-memory/postgres ticket stores are used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("CONVENE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("CONVENE_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	sessionTTL := 2 * time.Hour
	if raw := os.Getenv("CONVENE_SESSION_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			sessionTTL = parsed
		}
	}

	var brokers []string
	if raw := os.Getenv("CONVENE_KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	auditTopic := os.Getenv("CONVENE_AUDIT_TOPIC")
	if auditTopic == "" {
		auditTopic = "convene.audit"
	}

	return Server{
		Addr:          addr,
		DatabaseURL:   os.Getenv("CONVENE_DATABASE_URL"),
		JWTSigningKey: jwtSigningKey,
		SessionTTL:    sessionTTL,
		Redis: RedisConfig{
			URL:          os.Getenv("CONVENE_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaBrokers: brokers,
		AuditTopic:   auditTopic,
	}
}
