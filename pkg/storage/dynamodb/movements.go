package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ibiri/banking/pkg/models"
	"github.com/ibiri/banking/pkg/storage"
)

// Transfer atomically debits the sender, credits the recipient, and writes
// the transaction record. The debit carries a balance >= amount condition,
// so two concurrent transfers overdrawing one account can never both
// succeed; the loser fails the whole transact-write with no side effects.
func (s *Store) Transfer(ctx context.Context, tx *models.Transaction, senderAccount, recipientAccount string) error {
	// Resolve both owners: user items are keyed by email, not account number.
	sender, err := s.GetUserByAccountNumber(ctx, senderAccount)
	if err != nil {
		return fmt.Errorf("failed to get sender for transfer: %w", err)
	}
	recipient, err := s.GetUserByAccountNumber(ctx, recipientAccount)
	if err != nil {
		return fmt.Errorf("failed to get recipient for transfer: %w", err)
	}

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	amountAV, err := attributevalue.Marshal(tx.Amount)
	if err != nil {
		return fmt.Errorf("failed to marshal amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Debit the sender's account.
				Update: &types.Update{
					TableName: aws.String(s.UsersTableName),
					Key: map[string]types.AttributeValue{
						"email": &types.AttributeValueMemberS{Value: sender.Email},
					},
					UpdateExpression:    aws.String("SET account.balance = account.balance - :amount, updated_at = :now"),
					ConditionExpression: aws.String("account.balance >= :amount AND account_number = :acct"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": amountAV,
						":acct":   &types.AttributeValueMemberS{Value: senderAccount},
						":now":    nowAV,
					},
				},
			},
			{
				// Operation 2: Credit the recipient's account.
				Update: &types.Update{
					TableName: aws.String(s.UsersTableName),
					Key: map[string]types.AttributeValue{
						"email": &types.AttributeValueMemberS{Value: recipient.Email},
					},
					UpdateExpression:    aws.String("SET account.balance = account.balance + :amount, updated_at = :now"),
					ConditionExpression: aws.String("account_number = :acct"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": amountAV,
						":acct":   &types.AttributeValueMemberS{Value: recipientAccount},
						":now":    nowAV,
					},
				},
			},
			{
				// Operation 3: Create the transaction record.
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(transaction_id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// The debit is the first item; its conditional failure means the
			// balance could not cover the amount.
			if len(tce.CancellationReasons) > 0 && tce.CancellationReasons[0].Code != nil &&
				*tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
				return storage.ErrInsufficientFunds
			}
		}
		return fmt.Errorf("failed to execute transfer: %w", err)
	}

	return nil
}

// Debit atomically debits a single account and writes the transaction
// record. Used for airtime purchases and bill payments.
func (s *Store) Debit(ctx context.Context, tx *models.Transaction, accountNumber string) error {
	payer, err := s.GetUserByAccountNumber(ctx, accountNumber)
	if err != nil {
		return fmt.Errorf("failed to get payer for debit: %w", err)
	}

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	amountAV, err := attributevalue.Marshal(tx.Amount)
	if err != nil {
		return fmt.Errorf("failed to marshal amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.UsersTableName),
					Key: map[string]types.AttributeValue{
						"email": &types.AttributeValueMemberS{Value: payer.Email},
					},
					UpdateExpression:    aws.String("SET account.balance = account.balance - :amount, updated_at = :now"),
					ConditionExpression: aws.String("account.balance >= :amount AND account_number = :acct"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": amountAV,
						":acct":   &types.AttributeValueMemberS{Value: accountNumber},
						":now":    nowAV,
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(transaction_id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if len(tce.CancellationReasons) > 0 && tce.CancellationReasons[0].Code != nil &&
				*tce.CancellationReasons[0].Code == "ConditionalCheckFailed" {
				return storage.ErrInsufficientFunds
			}
		}
		return fmt.Errorf("failed to execute debit: %w", err)
	}

	return nil
}

// RecordTransaction writes a terminal transaction record without touching
// balances. The engine uses it to persist failed attempts for audit.
func (s *Store) RecordTransaction(ctx context.Context, tx *models.Transaction) error {
	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                txAV,
		ConditionExpression: aws.String("attribute_not_exists(transaction_id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}
