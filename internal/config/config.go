package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	// Store Configuration
	StoreDriver string // "sqlite" or "memory"
	SQLitePath  string
	// Redis Configuration (optional - for cache)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      int  // Cache TTL in seconds
	UseCache      bool // Whether to use cache (Redis) or not
	// Kafka Configuration (optional - change events)
	KafkaBrokers       []string
	KafkaTopicInvoices string
	KafkaTopicBuyers   string
	KafkaTopicProducts string
	KafkaClientID      string
	KafkaGroupID       string
	KafkaAcks          string
	KafkaRetries       int
	UseKafka           bool
	// Idempotency window for replayed writes, in seconds
	IdempotencyTTL int
}

func Load() *Config {
	// .env file is optional, continue with environment variables
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "sqlite")),
		SQLitePath:  getEnv("SQLITE_PATH", "./billing.db"),
		// Redis Configuration (optional)
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      getEnvAsInt("CACHE_TTL", 300),
		UseCache:      getEnvAsBool("USE_CACHE", false),
		// Kafka Configuration (optional)
		KafkaBrokers:       kafkaBrokers,
		KafkaTopicInvoices: getEnv("KAFKA_TOPIC_INVOICES", "billing.invoices"),
		KafkaTopicBuyers:   getEnv("KAFKA_TOPIC_BUYERS", "billing.buyers"),
		KafkaTopicProducts: getEnv("KAFKA_TOPIC_PRODUCTS", "billing.products"),
		KafkaClientID:      getEnv("KAFKA_CLIENT_ID", "billing-service"),
		KafkaGroupID:       instanceGroupID(getEnv("KAFKA_GROUP_ID", "billing-service")),
		KafkaAcks:          getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:       getEnvAsInt("KAFKA_RETRIES", 3),
		UseKafka:           getEnvAsBool("USE_KAFKA", false),
		IdempotencyTTL:     getEnvAsInt("IDEMPOTENCY_TTL", 300),
	}
}

// instanceGroupID suffixes the configured consumer group with the host name
// and a random tag. Each instance joins its own group and so receives every
// change event.
func instanceGroupID(base string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return fmt.Sprintf("%s-%s-%s", base, host, uuid.NewString()[:8])
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.ToLower(value) == "true" || value == "1"
}
