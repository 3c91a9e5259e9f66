package config

// InitializeConfig loads the environment, sets up Logger and connects every
// configured backend. Redis, NATS and InfluxDB stay nil when their address is
// not set; the database is skipped for the memory storage driver.
func InitializeConfig() (*Env, error) {
	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	NewLoggerService(env.LogLevel, env.LogFormat)

	if env.StorageDriver != StorageDriverMemory {
		if err := ConnectDatabase(env); err != nil {
			return nil, err
		}
	}
	if len(env.RedisHost) > 0 {
		if err := NewCacheService(env); err != nil {
			return nil, err
		}
	}
	if len(env.InfluxDBURL) > 0 {
		if err := NewInfluxDB(env); err != nil {
			return nil, err
		}
	}
	if len(env.NatsURL) > 0 {
		if err := ConnectNats(env); err != nil {
			return nil, err
		}
	}

	return env, nil
}
