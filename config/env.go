package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Env struct {
	HTTPListen    string        `envconfig:"HTTP_LISTEN" default:":3000"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat     string        `envconfig:"LOG_FORMAT" default:"text"`
	StorageDriver string        `envconfig:"STORAGE_DRIVER" default:"postgres"`
	StockCacheTTL time.Duration `envconfig:"STOCK_CACHE_TTL" default:"30s"`

	// MemoryBrokers seeds the memory storage driver, e.g. "1:Fidelity,2:Vanguard".
	MemoryBrokers map[int64]string `envconfig:"MEMORY_BROKERS"`

	RepriceInterval time.Duration `envconfig:"REPRICE_INTERVAL" default:"5m"`
	MQConfig        string        `envconfig:"MQ_CONFIG" default:"config/mq.yml"`
	JWTPublicKey    string        `envconfig:"JWT_PUBLIC_KEY"`

	DatabaseHost    string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort    string `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseUser    string `envconfig:"DATABASE_USER" default:"postgres"`
	DatabasePass    string `envconfig:"DATABASE_PASS"`
	DatabaseName    string `envconfig:"DATABASE_NAME" default:"stockapi"`
	DatabaseSSLMode string `envconfig:"DATABASE_SSLMODE" default:"require"`

	RedisHost     string `envconfig:"REDIS_HOST"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	NatsURL  string `envconfig:"NATS_URL"`
	NatsUser string `envconfig:"NATS_USER"`
	NatsPass string `envconfig:"NATS_PASS"`

	InfluxDBURL      string `envconfig:"INFLUXDB_URL"`
	InfluxDBDatabase string `envconfig:"INFLUXDB_DATABASE" default:"stockapi"`
}

// LoadEnv reads .env when present and then the process environment.
func LoadEnv() (*Env, error) {
	_ = godotenv.Load()

	env := &Env{}
	if err := envconfig.Process("", env); err != nil {
		return nil, err
	}

	return env, nil
}

func (e *Env) DSN() string {
	sslmode := "require"
	if e.DatabaseSSLMode == "disable" {
		sslmode = "disable"
	}

	return "host=" + e.DatabaseHost +
		" port=" + e.DatabasePort +
		" user=" + e.DatabaseUser +
		" password=" + e.DatabasePass +
		" dbname=" + e.DatabaseName +
		" sslmode=" + sslmode
}
