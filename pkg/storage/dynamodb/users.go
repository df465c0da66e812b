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

// CreateUser stores a new user record with their embedded bank account.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	// Keep the GSI attribute in step with the embedded account.
	user.AccountNumber = user.Account.AccountNumber

	userAV, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.UsersTableName),
		Item:                userAV,
		ConditionExpression: aws.String("attribute_not_exists(email)"), // Prevent overwriting existing users.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrUserExists
		}
		return fmt.Errorf("failed to create user in DynamoDB: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user record from DynamoDB by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user email: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.UsersTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get user from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrUserNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// GetUserByAccountNumber resolves the owner of an account number via the
// account-number GSI.
func (s *Store) GetUserByAccountNumber(ctx context.Context, accountNumber string) (*models.User, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.UsersTableName),
		IndexName:              aws.String(accountNumberGSI),
		KeyConditionExpression: aws.String("account_number = :acct"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":acct": &types.AttributeValueMemberS{Value: accountNumber},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query user by account number: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrAccountNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(result.Items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// SetPIN stores the PIN hash and flips has_pin on the user record.
func (s *Store) SetPIN(ctx context.Context, email, pinHash string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for PIN update: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.UsersTableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		UpdateExpression:    aws.String("SET pin_hash = :pin, has_pin = :has, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(email)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pin": &types.AttributeValueMemberS{Value: pinHash},
			":has": &types.AttributeValueMemberBOOL{Value: true},
			":now": nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrUserNotFound
		}
		return fmt.Errorf("failed to set PIN in DynamoDB: %w", err)
	}

	return nil
}

// UpdateCreditScore replaces the head of the user's credit-score history.
func (s *Store) UpdateCreditScore(ctx context.Context, email string, score models.CreditScore) error {
	scoreAV, err := attributevalue.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal credit score: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for credit score update: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.UsersTableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		UpdateExpression:    aws.String("SET credit_scores[0] = :score, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(email)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":score": scoreAV,
			":now":   nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrUserNotFound
		}
		return fmt.Errorf("failed to update credit score in DynamoDB: %w", err)
	}

	return nil
}
