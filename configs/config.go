package configs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBDriver        string
	DBSource        string
	JWTSecret       string
	JWTTTL          time.Duration
	StripeSecretKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		Port:            getEnv("PORT", "5000"),
		DBDriver:        getEnv("DB_DRIVER", "postgres"),
		DBSource:        dbSource(),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", "changeme"),
		JWTTTL:          time.Hour,
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}

// dbSource prefers a full DSN from DB_SOURCE; otherwise builds a postgres DSN
// from the individual DB_* variables.
func dbSource() string {
	if v, ok := os.LookupEnv("DB_SOURCE"); ok {
		return v
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASS", ""),
		getEnv("DB_NAME", "bistroBoss"),
	)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
