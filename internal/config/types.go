// Package config loads the chatbot settings from defaults, an optional
// chatbot.yaml file, CHATBOT_* environment variables and command-line flags.
package config

// Default values.
const (
	DefaultDataPath     = "data/stock-data.json"
	DefaultAddr         = ":5000"
	DefaultLogLevel     = "info"
	DefaultRedisKey     = "chatbot:catalog"
	DefaultMaxInputSize = 4096
	EnvPrefix           = "CHATBOT_"
)

// Config holds all CLI configuration options.
type Config struct {
	// Data is the path of the JSON or YAML catalog.
	Data string `koanf:"data"`

	// Addr is the listen address of the HTTP server.
	Addr string `koanf:"addr"`

	LogLevel string `koanf:"log_level"`

	// RedisAddr switches the catalog source to Redis when set.
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
	RedisKey      string `koanf:"redis_key"`

	// Metrics exposes Prometheus counters on /metrics.
	Metrics bool `koanf:"metrics"`

	MaxInputSize int `koanf:"max_input_size"`
}

// UseRedis reports whether the catalog is read from Redis.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
