package storage

import (
	"context"

	"github.com/ibiri/banking/pkg/models"
)

// LedgerReader defines the interface for reading the transaction ledger.
// The ledger is append-only: no update or delete is exposed.
type LedgerReader interface {
	// ListTransactionsByAccount returns transactions where the account
	// appears as payer or recipient, newest first, with 1-indexed
	// pagination.
	ListTransactionsByAccount(ctx context.Context, accountNumber string, page, limit int) ([]models.Transaction, *models.Pagination, error)
}
