// Package transactions exposes the paginated ledger read endpoint.
package transactions

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ibiri/banking/pkg/api"
	"github.com/ibiri/banking/pkg/mapping"
	"github.com/ibiri/banking/pkg/storage"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// TransactionsHandler holds the dependencies for ledger reads.
type TransactionsHandler struct {
	Store storage.LedgerReader
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.LedgerReader) *TransactionsHandler {
	return &TransactionsHandler{Store: store}
}

// ListTransactions handles GET /transactions. The account's ledger view
// includes every movement it participated in, sent or received, newest
// first.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	accountNumber := r.URL.Query().Get("accountNumber")
	if accountNumber == "" {
		writeError(w, http.StatusBadRequest, "Account number is required")
		return
	}

	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)

	txs, pagination, err := h.Store.ListTransactionsByAccount(r.Context(), accountNumber, page, limit)
	if err != nil {
		slog.Error("failed to list transactions", "account_number", accountNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	resp := api.TransactionListResponse{
		Transactions: mapping.ToApiTransactions(txs),
		Pagination:   mapping.ToApiPagination(pagination),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// queryInt parses a positive integer query parameter, falling back to the
// default on absence or garbage.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.ErrorResponse{Error: message}); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
