package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/ibiri/banking/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses. Tests
// substitute a mockery mock for it.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
//
// Users live in one table keyed by email, with an account_number GSI for
// payer/recipient resolution. Transactions live in a second table keyed by
// transaction_id, with payer_id and recipient_id GSIs (range key
// created_at) for participant queries.
type Store struct {
	Client                DynamoDBAPI
	UsersTableName        string
	TransactionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, usersTable, transactionsTable string) *Store {
	return &Store{
		Client:                client,
		UsersTableName:        usersTable,
		TransactionsTableName: transactionsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

const (
	accountNumberGSI = "account_number-index"
	payerGSI         = "payer_id-created_at-index"
	recipientGSI     = "recipient_id-created_at-index"
)
