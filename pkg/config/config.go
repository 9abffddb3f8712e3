package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and an
// optional .env file, panicking on parse failure.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load()

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and an
// optional .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load()

	return env.Parse(cfg)
}

// Config holds the configuration for the matching engine service.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"matching-engine"`

	HTTPConfig     `envPrefix:"HTTP_"`
	PostgresConfig `envPrefix:"PG_"`
	RedisConfig    `envPrefix:"REDIS_"`
	KafkaConfig    `envPrefix:"KAFKA_"`

	// SnapshotInterval controls how often the book view cache is
	// refreshed for every known symbol.
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"5s"`
}

// HTTPConfig holds the configuration for the HTTP API server.
type HTTPConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// PostgresConfig holds the configuration for the trade store.
type PostgresConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	Database string `env:"DATABASE" envDefault:"trading"`
	Username string `env:"USERNAME" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:""`
	SSLMode  string `env:"SSL_MODE" envDefault:"prefer"`

	MaxConns        int32         `env:"MAX_CONNS" envDefault:"50"`
	MinConns        int32         `env:"MIN_CONNS" envDefault:"10"`
	MaxConnLifetime time.Duration `env:"MAX_CONN_LIFETIME" envDefault:"2h"`
	MaxConnIdleTime time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"15m"`
	ConnectTimeout  time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
}

// RedisConfig holds the configuration for the book view cache.
type RedisConfig struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Username string `env:"USERNAME" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

// KafkaConfig holds the configuration for trade and book view
// publishing.
type KafkaConfig struct {
	Brokers     []string `env:"BROKER" envDefault:"localhost:9092"`
	TradesTopic string   `env:"TRADES_TOPIC" envDefault:"trades"`
	BooksTopic  string   `env:"BOOKS_TOPIC" envDefault:"orderbooks"`
}
