package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	appevents "github.com/ibiri/banking/pkg/events"
	"github.com/ibiri/banking/pkg/models"
	"github.com/ibiri/banking/pkg/storage"
	"github.com/ibiri/banking/pkg/storage/dynamodb"
)

const scoreBump = 10

var store storage.Storage

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := awsdynamodb.NewFromConfig(cfg)
	usersTable := os.Getenv("DYNAMODB_USERS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")

	if usersTable == "" || transactionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store = dynamodb.New(dbClient, usersTable, transactionsTable)
}

// HandleRequest processes transaction events and nudges the payer's display
// credit score up after a completed bill payment. The score is cosmetic:
// failures here never touch balances or the ledger.
func HandleRequest(ctx context.Context, sqsEvent lambdaevents.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event appevents.TransactionEvent
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message.
			return err
		}

		if event.Type != appevents.TransactionCompleted || event.Transaction == nil {
			continue
		}
		tx := event.Transaction
		if tx.Type != string(models.BILLPAYMENT) || tx.Status != string(models.COMPLETED) {
			continue
		}

		if err := bumpScore(ctx, tx.Payer.PayerID); err != nil {
			log.Printf("ERROR: failed to update credit score for transaction %s: %v", tx.TransactionID, err)
			return err
		}

		log.Printf("Updated credit score for payer of transaction %s", tx.TransactionID)
	}

	return nil
}

func bumpScore(ctx context.Context, accountNumber string) error {
	user, err := store.GetUserByAccountNumber(ctx, accountNumber)
	if err != nil {
		return err
	}

	current := 300
	if len(user.CreditScores) > 0 {
		current = user.CreditScores[0].Score
	}
	next := min(current+scoreBump, 850)

	score := models.CreditScore{
		Score:     next,
		LastScore: current,
		Date:      time.Now().UTC(),
		Range:     models.CreditScoreRange{Min: 300, Max: 850},
		Factors:   []string{"On-time bill payment"},
		Source:    "Experian",
	}
	return store.UpdateCreditScore(ctx, user.Email, score)
}

func main() {
	lambda.Start(HandleRequest)
}
