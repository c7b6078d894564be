package redisstore

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDISSTORE_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the database. It should be in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REDISSTORE_RETRY_ATTEMPTS" envDefault:"3"`                      // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval  time.Duration `env:"REDISSTORE_RETRY_INTERVAL" envDefault:"5s"`                     // RetryInterval is the interval between retry attempts.
	ConnectTimeout time.Duration `env:"REDISSTORE_CONNECT_TIMEOUT" envDefault:"30s"`                   // ConnectTimeout is the timeout for connecting to the database.

	KeyPrefix  string `env:"REDISSTORE_KEY_PREFIX" envDefault:"statekit:entity:"` // KeyPrefix prefixes every entity hash key.
	StateField string `env:"REDISSTORE_STATE_FIELD" envDefault:"status"`          // StateField is the hash field holding the tracked state.
}
