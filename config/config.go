package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBDriver   string // postgres (default) or mysql
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	EmailSender    string
	Password       string // SMTP app password
	SendGridAPIKey string // preferred over SMTP when set

	WebhookURL string // certificate-issued webhook, optional

	EnrollCoinBonus   int
	LessonCoinReward  int
	CompleteCoinBonus int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "upskillr"),
		DBPort:     getEnv("DB_PORT", "5432"),

		EmailSender:    getEnv("EMAIL_SENDER", ""),
		Password:       getEnv("PASSWORD", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		WebhookURL: getEnv("WEBHOOK_URL", ""),

		EnrollCoinBonus:   getEnvInt("ENROLL_COIN_BONUS", 10),
		LessonCoinReward:  getEnvInt("LESSON_COIN_REWARD", 5),
		CompleteCoinBonus: getEnvInt("COMPLETE_COIN_BONUS", 50),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
