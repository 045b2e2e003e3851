package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("EVENTS_BACKEND", "")
	t.Setenv("STATS_JOB_SCHEDULE", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", cfg.Timezone)
	assert.Equal(t, "0 */5 * * * *", cfg.StatsJobSchedule)
	assert.Equal(t, EventsBackendNone, cfg.EventsBackend)
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EVENTS_BACKEND", "Kafka")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("FEATURE_DELIVERY_FEE", "true")
	t.Setenv("DELIVERY_FLAT_FEE", "150.00")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, EventsBackendKafka, cfg.EventsBackend)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.FeatureDeliveryFee)
	assert.Equal(t, "150.00", cfg.DeliveryFlatFee)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{EventsBackend: EventsBackendNone, Timezone: "Europe/Moscow"}
	require.NoError(t, valid.Validate())

	unknownBackend := valid
	unknownBackend.EventsBackend = "rabbitmq"
	require.Error(t, unknownBackend.Validate())

	kafkaWithoutBrokers := valid
	kafkaWithoutBrokers.EventsBackend = EventsBackendKafka
	require.Error(t, kafkaWithoutBrokers.Validate())

	badZone := valid
	badZone.Timezone = "Mars/Olympus"
	require.Error(t, badZone.Validate())
}
