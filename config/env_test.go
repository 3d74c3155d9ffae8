package config

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_PORT", "SESSION_TTL", "KAFKA_BROKERS", "DATABASE_URL", "DB_HOST", "LOG_SINK_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.SinkTimeout)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.DatabaseConfigured())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("LOG_SINK_TIMEOUT", "not-a-duration")
	t.Setenv("APP_ENV", "production")

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5*time.Second, cfg.SinkTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{DBUser: "shop", DBPassword: "pw", DBHost: "db", DBPort: "5432", DBName: "trial_shop", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://shop:pw@db:5432/trial_shop?sslmode=disable", cfg.DSN())
	assert.True(t, cfg.DatabaseConfigured())

	cfg.DBPassword = "p@ss:w/rd"
	parsed, err := pgxpool.ParseConfig(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "p@ss:w/rd", parsed.ConnConfig.Password)
	assert.Equal(t, "shop", parsed.ConnConfig.User)
	assert.Equal(t, "db", parsed.ConnConfig.Host)
	assert.Equal(t, "trial_shop", parsed.ConnConfig.Database)

	cfg.DatabaseURL = "postgres://elsewhere/db"
	assert.Equal(t, "postgres://elsewhere/db", cfg.DSN())
}
