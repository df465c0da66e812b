package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/ibiri/banking/pkg/config"
	"github.com/ibiri/banking/pkg/engine"
	"github.com/ibiri/banking/pkg/events"
	"github.com/ibiri/banking/pkg/handlers"
	"github.com/ibiri/banking/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	if cfg.UsersTableName == "" || cfg.TransactionsTableName == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := awsdynamodb.NewFromConfig(awsCfg)
	store := dynamodb.New(dbClient, cfg.UsersTableName, cfg.TransactionsTableName)

	// Events are optional: without a queue the engine simply skips publishing.
	var publisher events.Publisher = &events.NoOpPublisher{}
	if cfg.EventsQueueURL != "" {
		publisher = events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.EventsQueueURL)
	} else {
		log.Println("SQS_EVENTS_QUEUE_URL not set, transaction events disabled")
	}

	eng := engine.New(store, publisher)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := handlers.NewRouter(store, eng, cfg.JWTSecret, logger)

	log.Printf("Starting server on port %s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
