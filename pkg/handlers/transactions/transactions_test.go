package transactions

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ibiri/banking/pkg/api"
	"github.com/ibiri/banking/pkg/models"
	"github.com/ibiri/banking/pkg/storage/mocks"
)

func TestListTransactions(t *testing.T) {
	t.Run("returns transactions with pagination", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewTransactionsHandler(store)

		now := time.Now().UTC()
		txs := []models.Transaction{
			{ID: "tx-2", Amount: 200, Currency: "NGN", Status: models.COMPLETED, CreatedAt: now},
			{ID: "tx-1", Amount: 100, Currency: "NGN", Status: models.COMPLETED, CreatedAt: now.Add(-time.Hour)},
		}
		pagination := &models.Pagination{CurrentPage: 1, TotalPages: 1, TotalTransactions: 2, Limit: 10}
		store.On("ListTransactionsByAccount", mock.Anything, "1111111111", 1, 10).Return(txs, pagination, nil)

		req := httptest.NewRequest(http.MethodGet, "/transactions?accountNumber=1111111111", nil)
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.TransactionListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Transactions, 2)
		assert.Equal(t, "tx-2", resp.Transactions[0].TransactionID)
		assert.Equal(t, "tx-1", resp.Transactions[1].TransactionID)
		assert.Equal(t, 2, resp.Pagination.TotalTransactions)
		assert.Equal(t, 10, resp.Pagination.Limit)
	})

	t.Run("custom page and limit are passed through", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewTransactionsHandler(store)

		pagination := &models.Pagination{CurrentPage: 3, TotalPages: 5, TotalTransactions: 22, Limit: 5}
		store.On("ListTransactionsByAccount", mock.Anything, "1111111111", 3, 5).
			Return([]models.Transaction{}, pagination, nil)

		req := httptest.NewRequest(http.MethodGet, "/transactions?accountNumber=1111111111&page=3&limit=5", nil)
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.TransactionListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Empty(t, resp.Transactions)
		assert.Equal(t, 3, resp.Pagination.CurrentPage)
	})

	t.Run("garbage paging parameters fall back to defaults", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewTransactionsHandler(store)

		pagination := &models.Pagination{CurrentPage: 1, TotalPages: 0, TotalTransactions: 0, Limit: 10}
		store.On("ListTransactionsByAccount", mock.Anything, "1111111111", 1, 10).
			Return([]models.Transaction{}, pagination, nil)

		req := httptest.NewRequest(http.MethodGet, "/transactions?accountNumber=1111111111&page=zero&limit=-4", nil)
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing account number", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewTransactionsHandler(store)

		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Account number is required", resp.Error)
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewTransactionsHandler(store)

		store.On("ListTransactionsByAccount", mock.Anything, "1111111111", 1, 10).
			Return(nil, nil, errors.New("query failed"))

		req := httptest.NewRequest(http.MethodGet, "/transactions?accountNumber=1111111111", nil)
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
