package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Port       string
	Songkick   SongkickConfig
	Cache      CacheConfig
	UsageLog   UsageLogConfig
	Redis      RedisConfig
	ClickHouse ClickHouseConfig
}

// SongkickConfig holds settings for the upstream Songkick client
type SongkickConfig struct {
	BaseURL   string
	Cookies   string // opaque cookie string forwarded on every upstream request
	UserAgent string
	TimeoutMS int64 // timeout for a single upstream request in milliseconds
}

// CacheConfig controls the optional Redis response cache
type CacheConfig struct {
	Enabled bool
	TTLMS   int64 // duration to keep a cached upstream response in milliseconds
}

// UsageLogConfig controls the optional ClickHouse usage log
type UsageLogConfig struct {
	Enabled              bool
	BufferCapacity       int // capacity of the usage record buffer channel (default: 10,000)
	BatchSize            int // number of records to batch before flushing (default: 1,000)
	FlushIntervalSeconds int // time interval in seconds to flush batches (default: 5)
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	Endpoint string
}

// ClickHouseConfig holds ClickHouse connection settings
type ClickHouseConfig struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
	DSN      string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "3000"),
		Songkick: SongkickConfig{
			BaseURL:   getEnv("SONGKICK_BASE_URL", "https://www.songkick.com"),
			Cookies:   getEnv("SONGKICK_COOKIES", ""),
			UserAgent: getEnv("SONGKICK_USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"),
			TimeoutMS: getEnvAsInt64("SONGKICK_TIMEOUT_MS", 10000),
		},
		Cache: CacheConfig{
			Enabled: getEnv("SONGKICK_CACHE_ENABLED", "0") == "1",
			TTLMS:   getEnvAsInt64("SONGKICK_CACHE_TTL_MS", 5*60*1000),
		},
		UsageLog: UsageLogConfig{
			Enabled:              getEnv("USAGE_LOG_ENABLED", "0") == "1",
			BufferCapacity:       getEnvAsInt("USAGE_BUFFER_CAPACITY", 10000),
			BatchSize:            getEnvAsInt("USAGE_BATCH_SIZE", 1000),
			FlushIntervalSeconds: getEnvAsInt("USAGE_FLUSH_INTERVAL_SECONDS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "127.0.0.1"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			Endpoint: getEnv("REDIS_ENDPOINT", ""),
		},
		ClickHouse: ClickHouseConfig{
			Host:     getEnv("CLICKHOUSE_HOST", "127.0.0.1"),
			Port:     getEnv("CLICKHOUSE_PORT", "9000"),
			Database: getEnv("CLICKHOUSE_DATABASE", "default"),
			User:     getEnv("CLICKHOUSE_USER", "app"),
			Password: getEnv("CLICKHOUSE_PASSWORD", ""),
		},
	}
}

func (c *ClickHouseConfig) GetClickHouseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}

	// Build DSN from components
	dsn := "clickhouse://"
	if c.User != "" {
		dsn += c.User
		if c.Password != "" {
			dsn += ":" + c.Password
		}
		dsn += "@"
	}
	dsn += c.Host + ":" + c.Port + "/" + c.Database

	return dsn
}

func (r *RedisConfig) GetRedisAddr() string {
	if r.Endpoint != "" {
		return r.Endpoint
	}
	return r.Host + ":" + r.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
