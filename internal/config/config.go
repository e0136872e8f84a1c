package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr string

	OpenAIKey   string
	OpenAIModel string

	SessionSecret string

	// MinMessages is the number of user messages the assessment runs
	// for before it is allowed (and then forced) to complete.
	MinMessages int
}

func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		dbPort = 5432 // fallback
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}

	minMessages, err := strconv.Atoi(os.Getenv("MIN_MESSAGES"))
	if err != nil || minMessages < 1 {
		minMessages = 10
	}

	return &Config{
		Port: port,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     dbPort,
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisAddr: redisAddr,

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: model,

		SessionSecret: os.Getenv("SESSION_SECRET"),

		MinMessages: minMessages,
	}
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
