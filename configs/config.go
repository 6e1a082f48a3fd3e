package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	JWTSecret        string
	OwnerTokenTTL    time.Duration
	CustomerTokenTTL time.Duration

	// default tax rate for newly onboarded restaurants, e.g. "0.07"
	TaxRate decimal.Decimal

	// base URL encoded into table QR codes
	PublicBaseURL string
	CookieSecure  bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0"))
	if err != nil {
		log.Fatalf("invalid TAX_RATE: %v", err)
	}

	return &Config{
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBSource:         getEnv("DB_SOURCE", "dineinn.db"),
		Port:             getEnv("PORT", "8000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		OwnerTokenTTL:    getDuration("OWNER_TOKEN_TTL", 12*time.Hour),
		CustomerTokenTTL: getDuration("CUSTOMER_TOKEN_TTL", 365*24*time.Hour),
		TaxRate:          taxRate,
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		CookieSecure:     getEnv("COOKIE_SECURE", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}
