package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort              string
	MongoDBConnectionString string
	MongoDBDatabaseName     string
	RabbitMQHostName        string
	RabbitMQExchange        string
	CourierBaseURL          string
	CourierAPIKey           string
	CourierSecretKey        string
}

func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables only")
	}

	config := &Config{
		ServerPort:              os.Getenv("SERVER_PORT"),
		MongoDBConnectionString: os.Getenv("MONGODB_CONNECTION_STRING"),
		MongoDBDatabaseName:     os.Getenv("MONGODB_DATABASE_NAME"),
		RabbitMQHostName:        os.Getenv("RABBITMQ_HOSTNAME"),
		RabbitMQExchange:        os.Getenv("RABBITMQ_EXCHANGE"),
		CourierBaseURL:          os.Getenv("COURIER_BASE_URL"),
		CourierAPIKey:           os.Getenv("COURIER_API_KEY"),
		CourierSecretKey:        os.Getenv("COURIER_SECRET_KEY"),
	}

	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	if config.MongoDBDatabaseName == "" {
		config.MongoDBDatabaseName = "backoffice-db"
	}
	if config.RabbitMQExchange == "" {
		config.RabbitMQExchange = "courier_events"
	}
	if config.CourierBaseURL == "" {
		config.CourierBaseURL = "https://portal.packzy.com/api/v1"
	}

	return config, nil
}
