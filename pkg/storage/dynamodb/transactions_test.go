package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ibiri/banking/pkg/models"
)

func marshalTransactions(t *testing.T, txs []models.Transaction) []map[string]types.AttributeValue {
	t.Helper()
	items := make([]map[string]types.AttributeValue, len(txs))
	for i := range txs {
		item, err := attributevalue.MarshalMap(txs[i])
		require.NoError(t, err)
		items[i] = item
	}
	return items
}

func TestListTransactionsByAccount(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	sent := []models.Transaction{
		{ID: "tx-newest", PayerID: "1111111111", RecipientID: "2222222222", Amount: 300, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "tx-oldest", PayerID: "1111111111", RecipientID: "3333333333", Amount: 100, CreatedAt: base},
	}
	received := []models.Transaction{
		{ID: "tx-middle", PayerID: "4444444444", RecipientID: "1111111111", Amount: 200, CreatedAt: base.Add(time.Hour)},
	}

	t.Run("merges both directions newest first", func(t *testing.T) {
		store, client := newTestStore(t)

		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == payerGSI
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, sent)}, nil)
		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == recipientGSI
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, received)}, nil)

		txs, pagination, err := store.ListTransactionsByAccount(ctx, "1111111111", 1, 10)
		require.NoError(t, err)

		require.Len(t, txs, 3)
		assert.Equal(t, "tx-newest", txs[0].ID)
		assert.Equal(t, "tx-middle", txs[1].ID)
		assert.Equal(t, "tx-oldest", txs[2].ID)

		assert.Equal(t, 1, pagination.CurrentPage)
		assert.Equal(t, 1, pagination.TotalPages)
		assert.Equal(t, 3, pagination.TotalTransactions)
		assert.Equal(t, 10, pagination.Limit)
	})

	t.Run("self transfer appears once", func(t *testing.T) {
		store, client := newTestStore(t)

		selfTx := []models.Transaction{
			{ID: "tx-self", PayerID: "1111111111", RecipientID: "1111111111", Amount: 50, CreatedAt: base},
		}
		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == payerGSI
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, selfTx)}, nil)
		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == recipientGSI
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, selfTx)}, nil)

		txs, pagination, err := store.ListTransactionsByAccount(ctx, "1111111111", 1, 10)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, 1, pagination.TotalTransactions)
	})

	t.Run("second page slices the merged list", func(t *testing.T) {
		store, client := newTestStore(t)

		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == payerGSI
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, sent)}, nil)
		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == recipientGSI
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, received)}, nil)

		txs, pagination, err := store.ListTransactionsByAccount(ctx, "1111111111", 2, 2)
		require.NoError(t, err)

		require.Len(t, txs, 1)
		assert.Equal(t, "tx-oldest", txs[0].ID)
		assert.Equal(t, 2, pagination.CurrentPage)
		assert.Equal(t, 2, pagination.TotalPages)
		assert.Equal(t, 3, pagination.TotalTransactions)
	})

	t.Run("page past the end is empty but keeps totals", func(t *testing.T) {
		store, client := newTestStore(t)

		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == payerGSI
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, sent)}, nil)
		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == recipientGSI
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, received)}, nil)

		txs, pagination, err := store.ListTransactionsByAccount(ctx, "1111111111", 9, 10)
		require.NoError(t, err)
		assert.Empty(t, txs)
		assert.Equal(t, 3, pagination.TotalTransactions)
		assert.Equal(t, 9, pagination.CurrentPage)
	})

	t.Run("follows the index pagination cursor", func(t *testing.T) {
		store, client := newTestStore(t)

		cursor := map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: "tx-newest"},
		}
		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == payerGSI && in.ExclusiveStartKey == nil
		})).Return(&awsdynamodb.QueryOutput{
			Items:            marshalTransactions(t, sent[:1]),
			LastEvaluatedKey: cursor,
		}, nil).Once()
		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == payerGSI && in.ExclusiveStartKey != nil
		})).Return(&awsdynamodb.QueryOutput{Items: marshalTransactions(t, sent[1:])}, nil).Once()
		client.On("Query", ctx, mock.MatchedBy(func(in *awsdynamodb.QueryInput) bool {
			return *in.IndexName == recipientGSI
		})).Return(&awsdynamodb.QueryOutput{}, nil)

		txs, _, err := store.ListTransactionsByAccount(ctx, "1111111111", 1, 10)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, "tx-newest", txs[0].ID)
		assert.Equal(t, "tx-oldest", txs[1].ID)
	})
}
