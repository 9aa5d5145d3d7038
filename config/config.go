package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for a vectorization run
type Config struct {
	Analysis AnalysisConfig
	Runtime  RuntimeConfig
}

// AnalysisConfig controls tokenization, filtering and lemmatization
type AnalysisConfig struct {
	MinTokenLength   int
	TopTerms         int
	Lemmatizer       string
	Language         string
	StopwordsFile    string
	RulesFile        string
	NormalizeUnicode bool
}

// RuntimeConfig controls parallelism and input loading
type RuntimeConfig struct {
	Workers     int
	Shards      int
	LoadTimeout time.Duration
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MinTokenLength:   GetIntEnv("VECTORIZER_MIN_TOKEN_LENGTH", 3),
			TopTerms:         GetIntEnv("VECTORIZER_TOP_TERMS", 10),
			Lemmatizer:       GetStringEnv("VECTORIZER_LEMMATIZER", "rules"),
			Language:         GetStringEnv("VECTORIZER_LANGUAGE", "russian"),
			StopwordsFile:    GetStringEnv("VECTORIZER_STOPWORDS_FILE", ""),
			RulesFile:        GetStringEnv("VECTORIZER_RULES_FILE", ""),
			NormalizeUnicode: GetBoolEnv("VECTORIZER_NORMALIZE_UNICODE", true),
		},
		Runtime: RuntimeConfig{
			Workers:     GetIntEnv("VECTORIZER_WORKERS", 8),
			Shards:      GetIntEnv("VECTORIZER_SHARDS", 16),
			LoadTimeout: GetDurationEnv("VECTORIZER_LOAD_TIMEOUT", 30*time.Second),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
