package cmd_test

import (
	"testing"
	"time"

	"marketplace/cmd"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(map[string]string{
		"DB_HOST": "localhost",
		"DB_USER": "app",
		"DB_NAME": "marketplace",
	}))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 120*time.Second, cfg.TipPaymentTimeout)
	assert.Equal(t, "*/10 * * * * *", cfg.TipExpirySchedule)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.KafkaHost)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "host=localhost port=5432 user=app password= dbname=marketplace sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(map[string]string{
		"HTTP_PORT":                 "9000",
		"DB_HOST":                   "db",
		"DB_PORT":                   "6543",
		"DB_USER":                   "app",
		"DB_PASSWORD":               "secret",
		"DB_NAME":                   "marketplace",
		"DB_SSLMODE":                "require",
		"KAFKA_HOST":                "kafka:9092",
		"KAFKA_ORDER_CHANGED_TOPIC": "orders",
		"REDIS_ADDR":                "redis:6379",
		"TIP_PAYMENT_TIMEOUT":       "90s",
		"TIP_EXPIRY_SCHEDULE":       "*/5 * * * * *",
		"LOG_LEVEL":                 "debug",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "kafka:9092", cfg.KafkaHost)
	assert.Equal(t, "orders", cfg.KafkaOrderChangedTopic)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Second, cfg.TipPaymentTimeout)
	assert.Equal(t, "*/5 * * * * *", cfg.TipExpirySchedule)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := cmd.LoadConfig(env(map[string]string{
		"TIP_PAYMENT_TIMEOUT": "soon",
	}))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "TIP_PAYMENT_TIMEOUT")
}
