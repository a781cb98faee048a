package config

import (
	"os"
	"time"
)

// Config carries everything main needs to wire the server. Values come from
// the environment; godotenv loads a .env file before Load runs.
type Config struct {
	Port string

	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	RequestTimeout time.Duration
	CacheTTL       time.Duration
}

func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "caredesk"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		RequestTimeout:   getDuration("REQUEST_TIMEOUT", 10*time.Second),
		CacheTTL:         getDuration("CACHE_TTL", 10*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
