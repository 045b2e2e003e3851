package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Events backends.
const (
	EventsBackendNone  = "none"
	EventsBackendKafka = "kafka"
	EventsBackendRedis = "redis"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AppEnv   string
	LogLevel string
	Timezone string

	EventsBackend           string
	KafkaBrokers            []string
	KafkaOrderEventsTopic   string
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int
	RedisOrderEventsChannel string

	FeatureDeliveryFee    bool
	DeliveryFlatFee       string
	DeliveryFreeThreshold string
	FeaturePromoCodes     bool

	StatsJobSchedule string
}

// LoadConfig reads the optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		HTTPPort:   v.GetString("HTTP_PORT"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),

		AppEnv:   v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Timezone: v.GetString("TIMEZONE"),

		EventsBackend:           strings.ToLower(v.GetString("EVENTS_BACKEND")),
		KafkaBrokers:            splitList(v.GetString("KAFKA_BROKERS")),
		KafkaOrderEventsTopic:   v.GetString("KAFKA_ORDER_EVENTS_TOPIC"),
		RedisAddr:               v.GetString("REDIS_ADDR"),
		RedisPassword:           v.GetString("REDIS_PASSWORD"),
		RedisDB:                 v.GetInt("REDIS_DB"),
		RedisOrderEventsChannel: v.GetString("REDIS_ORDER_EVENTS_CHANNEL"),

		FeatureDeliveryFee:    v.GetBool("FEATURE_DELIVERY_FEE"),
		DeliveryFlatFee:       v.GetString("DELIVERY_FLAT_FEE"),
		DeliveryFreeThreshold: v.GetString("DELIVERY_FREE_THRESHOLD"),
		FeaturePromoCodes:     v.GetBool("FEATURE_PROMO_CODES"),

		StatsJobSchedule: v.GetString("STATS_JOB_SCHEDULE"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "foodorder")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "Europe/Moscow")
	v.SetDefault("EVENTS_BACKEND", EventsBackendNone)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_ORDER_EVENTS_TOPIC", "order-events")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_ORDER_EVENTS_CHANNEL", "order-events")
	v.SetDefault("FEATURE_DELIVERY_FEE", false)
	v.SetDefault("DELIVERY_FLAT_FEE", "0")
	v.SetDefault("FEATURE_PROMO_CODES", false)
	v.SetDefault("STATS_JOB_SCHEDULE", "0 */5 * * * *")
}

func (c Config) Validate() error {
	switch c.EventsBackend {
	case EventsBackendNone, EventsBackendKafka, EventsBackendRedis:
	default:
		return fmt.Errorf("EVENTS_BACKEND must be one of none, kafka, redis, got %q", c.EventsBackend)
	}
	if c.EventsBackend == EventsBackendKafka && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required for the kafka events backend")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE: %w", err)
	}
	return nil
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
