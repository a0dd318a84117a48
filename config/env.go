package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the service.
type Config struct {
	AppName   string
	HTTP      HTTPConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

type HTTPConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI            string
	Database       string
	TodoCollection string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// RedisConfig is optional. An empty URL keeps rate limiting in memory.
type RedisConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type RateLimitConfig struct {
	Max        int
	Expiration time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

// LoadENV will load the .env file if the GO_ENV environment variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load reads the configuration from the environment (and .env in development).
func Load() (*Config, error) {
	if err := LoadENV(); err != nil {
		return nil, err
	}

	cfg := &Config{
		AppName: GetEnv("APP_NAME", "zero-todos"),
		HTTP: HTTPConfig{
			Port:            GetEnv("PORT", "8080"),
			ReadTimeout:     getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Mongo: MongoConfig{
			URI:            os.Getenv("MONGODB_URI"),
			Database:       os.Getenv("DATABASE"),
			TodoCollection: GetEnv("TODO_COLLECTION", "todos"),
			ConnectTimeout: getDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			MaxPoolSize:    uint64(getInt("MONGO_MAX_POOL_SIZE", 10)),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Issuer: GetEnv("JWT_ISSUER", "zero-todos"),
			TTL:    getDuration("JWT_TTL", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			Max:        getInt("RATE_LIMIT_MAX", 20),
			Expiration: getDuration("RATE_LIMIT_WINDOW", 30*time.Second),
		},
		Logger: LoggerConfig{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("you must set your 'MONGODB_URI' environmental variable. See\n\t https://www.mongodb.com/docs/drivers/go/current/usage-examples/#environment-variable")
	}
	if cfg.Mongo.Database == "" {
		return nil, errors.New("you must set your 'DATABASE' environmental variable")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("you must set your 'JWT_SECRET' environmental variable")
	}
	return cfg, nil
}

// Address is the fiber listen address.
func (c *Config) Address() string {
	return ":" + c.HTTP.Port
}

// GetEnv func to get env values
func GetEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
