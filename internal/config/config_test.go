package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("USE_CACHE", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "./billing.db", cfg.SQLitePath)
	assert.False(t, cfg.UseCache)
	assert.Equal(t, []string{"localhost:9093"}, cfg.KafkaBrokers)
	assert.Equal(t, "billing.invoices", cfg.KafkaTopicInvoices)
	assert.Equal(t, 300, cfg.IdempotencyTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("USE_CACHE", "1")
	t.Setenv("CACHE_TTL", "60")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.True(t, cfg.UseCache)
	assert.Equal(t, 60, cfg.CacheTTL)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	assert.Equal(t, 7, getEnvAsInt("REDIS_DB", 7))
}

func TestLoad_EachInstanceGetsItsOwnGroupID(t *testing.T) {
	t.Setenv("KAFKA_GROUP_ID", "billing-cache")

	first := Load()
	second := Load()

	assert.NotEqual(t, first.KafkaGroupID, second.KafkaGroupID)
	assert.True(t, strings.HasPrefix(first.KafkaGroupID, "billing-cache-"), first.KafkaGroupID)
	assert.True(t, strings.HasPrefix(second.KafkaGroupID, "billing-cache-"), second.KafkaGroupID)
}
