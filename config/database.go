package config

import (
	"time"

	"tonotes/utils"
)

type DatabaseConfig struct {
	URI                  string
	MaxPoolSize          uint64
	MinPoolSize          uint64
	MaxConnIdleTime      time.Duration
	DatabaseName         string
	RetryWrites          bool
	NotesCollection      string
	ActivitiesCollection string
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:                  utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:          utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:          utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime:      time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:         utils.GetEnvAsString("MONGO_DB", "tonotes"),
		RetryWrites:          utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
		NotesCollection:      utils.GetEnvAsString("NOTES_COLLECTION", "notes"),
		ActivitiesCollection: utils.GetEnvAsString("ACTIVITIES_COLLECTION", "activities"),
	}
}

// MongoOptions converts the pool settings for utils.NewMongoClient.
func (c DatabaseConfig) MongoOptions() utils.MongoOptions {
	return utils.MongoOptions{
		URI:             c.URI,
		MaxPoolSize:     c.MaxPoolSize,
		MinPoolSize:     c.MinPoolSize,
		MaxConnIdleTime: c.MaxConnIdleTime,
		RetryWrites:     c.RetryWrites,
	}
}
