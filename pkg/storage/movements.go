package storage

import (
	"context"

	"github.com/ibiri/banking/pkg/models"
)

// MovementStore defines the privileged interface for committing balance
// mutations. Each commit is atomic: either every balance change and the
// transaction record are applied together, or nothing is. The debit side
// always carries a balance >= amount condition; a conditional failure
// surfaces as ErrInsufficientFunds with no side effects.
type MovementStore interface {
	// Transfer debits the sender's account, credits the recipient's
	// account, and writes the transaction record in one atomic unit.
	Transfer(ctx context.Context, tx *models.Transaction, senderAccount, recipientAccount string) error

	// Debit debits a single account and writes the transaction record in
	// one atomic unit. Used for airtime and bill payments, where the
	// recipient is external.
	Debit(ctx context.Context, tx *models.Transaction, accountNumber string) error

	// RecordTransaction writes a terminal transaction record on its own,
	// without touching balances. Used to persist failed attempts for
	// audit.
	RecordTransaction(ctx context.Context, tx *models.Transaction) error
}
