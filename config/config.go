package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultJWTExpiration = 24 * time.Hour

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int

	SecretKey     []byte
	JWTExpiration time.Duration
	SecureCookies bool

	// Emails ending with this suffix log in as moderators.
	ModeratorEmailDomain string

	LoginRatePerMinute int
	LoginBurst         int

	Port     string
	LogLevel string
	LogFile  string
	GinMode  string
}

// Load reads the optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "popcornhour"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		SecretKey:     loadSecret(),
		JWTExpiration: getEnvDuration("JWT_EXPIRATION", DefaultJWTExpiration),
		SecureCookies: getEnvBool("SECURE_COOKIES", false),

		ModeratorEmailDomain: getEnv("MODERATOR_EMAIL_DOMAIN", "@admin.com"),

		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 20),
		LoginBurst:         getEnvInt("LOGIN_BURST", 10),

		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		LogFile:  os.Getenv("LOG_FILE"),
		GinMode:  getEnv("GIN_MODE", "release"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
