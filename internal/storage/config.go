package storage

import "os"

// CacheMode represents the DynamoDB connection mode for the day cache.
type CacheMode string

const (
	CacheModeLocal CacheMode = "local"
	CacheModeAWS   CacheMode = "aws"
	CacheModeNone  CacheMode = "none"
)

// CacheConfig holds DynamoDB configuration for the day cache and run
// journal.
type CacheConfig struct {
	Mode             CacheMode
	Endpoint         string // for local mode
	Region           string
	ChatRecordsTable string
	RunJournalTable  string
}

// LoadCacheConfig loads cache config from environment.
func LoadCacheConfig() CacheConfig {
	mode := CacheMode(getEnv("CACHE_MODE", "none"))
	if mode != CacheModeLocal && mode != CacheModeAWS {
		mode = CacheModeNone
	}

	return CacheConfig{
		Mode:             mode,
		Endpoint:         getEnv("CACHE_ENDPOINT", "http://localhost:8000"),
		Region:           getEnv("CACHE_REGION", "ca-central-1"),
		ChatRecordsTable: getEnv("CHAT_RECORDS_TABLE", "askdata-chat-records"),
		RunJournalTable:  getEnv("RUN_JOURNAL_TABLE", "askdata-run-journal"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
