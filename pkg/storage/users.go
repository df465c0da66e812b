package storage

import (
	"context"

	"github.com/ibiri/banking/pkg/models"
)

// UserReader defines the interface for resolving users and their accounts.
type UserReader interface {
	// GetUserByEmail retrieves a user by their unique email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByAccountNumber retrieves the user owning the given account
	// number.
	GetUserByAccountNumber(ctx context.Context, accountNumber string) (*models.User, error)
}

// UserManager defines the interface for creating and updating users.
type UserManager interface {
	// CreateUser stores a new user with their embedded bank account.
	// Fails with ErrUserExists if the email is already registered.
	CreateUser(ctx context.Context, user *models.User) error

	// SetPIN stores a PIN hash for the user and marks the PIN as set.
	SetPIN(ctx context.Context, email, pinHash string) error

	// UpdateCreditScore replaces the user's current display credit score.
	// Display-only; nothing in the ledger depends on it.
	UpdateCreditScore(ctx context.Context, email string, score models.CreditScore) error
}

// UserStore combines the reader and manager interfaces.
type UserStore interface {
	UserReader
	UserManager
}
