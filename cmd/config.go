package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
)

const (
	DefaultHTTPPort          = "8080"
	DefaultDBSslMode         = "disable"
	DefaultOrderChangedTopic = "marketplace.order.changed"
	DefaultTipPaymentTimeout = 120 * time.Second
	DefaultTipExpirySchedule = "*/10 * * * * *"
	DefaultLogLevel          = "info"
	DefaultServiceName       = "marketplace"
	DefaultTipStatusCacheTTL = 24 * time.Hour
	DefaultShutdownGrace     = 10 * time.Second
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RedisAddr              string
	TipPaymentTimeout      time.Duration
	TipExpirySchedule      string
	LogLevel               string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after
// the .env file has been loaded. Kafka and Redis stay disabled when their
// address is empty.
func LoadConfig(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:               value("HTTP_PORT", DefaultHTTPPort),
		DBHost:                 value("DB_HOST", ""),
		DBPort:                 value("DB_PORT", "5432"),
		DBUser:                 value("DB_USER", ""),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 value("DB_NAME", ""),
		DBSslMode:              value("DB_SSLMODE", DefaultDBSslMode),
		KafkaHost:              value("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: value("KAFKA_ORDER_CHANGED_TOPIC", DefaultOrderChangedTopic),
		RedisAddr:              value("REDIS_ADDR", ""),
		TipPaymentTimeout:      DefaultTipPaymentTimeout,
		TipExpirySchedule:      value("TIP_EXPIRY_SCHEDULE", DefaultTipExpirySchedule),
		LogLevel:               value("LOG_LEVEL", DefaultLogLevel),
	}

	var problems []error
	if raw := value("TIP_PAYMENT_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		switch {
		case err != nil:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("TIP_PAYMENT_TIMEOUT", err))
		case timeout <= 0:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("TIP_PAYMENT_TIMEOUT",
				fmt.Errorf("%s is not positive", timeout)))
		default:
			cfg.TipPaymentTimeout = timeout
		}
	}
	for key, v := range map[string]string{"DB_HOST": cfg.DBHost, "DB_USER": cfg.DBUser, "DB_NAME": cfg.DBName} {
		if v == "" {
			problems = append(problems, errs.NewValueIsRequiredError(key))
		}
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string for GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
