package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ibiri/banking/pkg/models"
)

// ListTransactionsByAccount returns transactions where the account appears
// as payer or recipient, newest first. Both participant GSIs are queried and
// merged; duplicates (an account paying itself) collapse to one record.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountNumber string, page, limit int) ([]models.Transaction, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	asPayer, err := s.queryParticipant(ctx, payerGSI, "payer_id", accountNumber)
	if err != nil {
		return nil, nil, err
	}
	asRecipient, err := s.queryParticipant(ctx, recipientGSI, "recipient_id", accountNumber)
	if err != nil {
		return nil, nil, err
	}

	merged := make([]models.Transaction, 0, len(asPayer)+len(asRecipient))
	seen := make(map[string]bool, len(asPayer))
	for _, tx := range asPayer {
		seen[tx.ID] = true
		merged = append(merged, tx)
	}
	for _, tx := range asRecipient {
		if !seen[tx.ID] {
			merged = append(merged, tx)
		}
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	total := len(merged)
	totalPages := (total + limit - 1) / limit
	pagination := &models.Pagination{
		CurrentPage:       page,
		TotalPages:        totalPages,
		TotalTransactions: total,
		Limit:             limit,
	}

	start := (page - 1) * limit
	if start >= total {
		return []models.Transaction{}, pagination, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return merged[start:end], pagination, nil
}

// queryParticipant reads every page of one participant GSI, newest first.
func (s *Store) queryParticipant(ctx context.Context, index, keyAttr, accountNumber string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(s.TransactionsTableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String(fmt.Sprintf("%s = :acct", keyAttr)),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":acct": &types.AttributeValueMemberS{Value: accountNumber},
			},
			ScanIndexForward:  aws.Bool(false), // Sort by created_at in descending order
			ExclusiveStartKey: startKey,
		}

		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", index, err)
		}

		var pageItems []models.Transaction
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &pageItems); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
		}
		transactions = append(transactions, pageItems...)

		if result.LastEvaluatedKey == nil {
			return transactions, nil
		}
		startKey = result.LastEvaluatedKey
	}
}
