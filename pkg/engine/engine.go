// Package engine implements the money-movement pipeline shared by
// transfers, airtime purchases, and bill payments: validate input, resolve
// the participants, verify the payer's PIN, check funds, then commit the
// balance mutation and the ledger record as one atomic store operation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ibiri/banking/pkg/auth"
	"github.com/ibiri/banking/pkg/events"
	"github.com/ibiri/banking/pkg/mapping"
	"github.com/ibiri/banking/pkg/models"
	"github.com/ibiri/banking/pkg/storage"
)

var (
	// ErrInvalidInput is returned when a required field is missing or the amount is not positive.
	ErrInvalidInput = errors.New("invalid input data")
	// ErrPayerNotFound is returned when the paying account number resolves to no user.
	ErrPayerNotFound = errors.New("payer account not found")
	// ErrRecipientNotFound is returned when the receiving account number resolves to no user.
	ErrRecipientNotFound = errors.New("recipient account not found")
	// ErrInvalidBillType is returned when the bill type is not in the catalog.
	ErrInvalidBillType = errors.New("invalid bill type")
	// ErrStoreUnavailable is returned when the backing store fails after validation passed.
	ErrStoreUnavailable = errors.New("store unavailable")
)

const (
	processorName = "Ibiri"
	currencyNGN   = "NGN"
)

// Store is the slice of the data layer the engine needs.
type Store interface {
	storage.UserReader
	storage.MovementStore
}

// Engine executes money movements. It is the only writer of balances and
// transaction records.
type Engine struct {
	Store  Store
	Events events.Publisher
}

// New creates a new Engine. publisher may be nil when no queue is
// configured.
func New(store Store, publisher events.Publisher) *Engine {
	return &Engine{Store: store, Events: publisher}
}

// TransferInput is a peer-to-peer transfer request.
type TransferInput struct {
	SenderAccountNumber    string
	RecipientAccountNumber string
	Amount                 int64
	PIN                    string
}

// Transfer moves money between two accounts.
func (e *Engine) Transfer(ctx context.Context, in TransferInput) (*models.Transaction, error) {
	if in.SenderAccountNumber == "" || in.RecipientAccountNumber == "" || in.Amount <= 0 || in.PIN == "" {
		return nil, ErrInvalidInput
	}

	sender, err := e.Store.GetUserByAccountNumber(ctx, in.SenderAccountNumber)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrPayerNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	recipient, err := e.Store.GetUserByAccountNumber(ctx, in.RecipientAccountNumber)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := auth.VerifyPIN(sender, in.PIN); err != nil {
		return nil, err
	}
	if sender.Account.Balance < in.Amount {
		return nil, storage.ErrInsufficientFunds
	}

	tx := newTransaction(sender, in.Amount, models.TRANSFER,
		models.Merchant{
			RecipientID:   in.RecipientAccountNumber,
			RecipientName: recipient.FullName(),
		},
		fmt.Sprintf("Transfer of %d NGN from %s to %s", in.Amount, sender.FullName(), recipient.FullName()),
	)

	return e.commit(ctx, tx, func(ctx context.Context) error {
		return e.Store.Transfer(ctx, tx, in.SenderAccountNumber, in.RecipientAccountNumber)
	})
}

// AirtimeInput is an airtime top-up request. The phone number itself is the
// recipient; no resolution is needed.
type AirtimeInput struct {
	PhoneNumber   string
	AccountNumber string
	Amount        int64
	PIN           string
}

// Airtime purchases airtime for a phone number.
func (e *Engine) Airtime(ctx context.Context, in AirtimeInput) (*models.Transaction, error) {
	if in.PhoneNumber == "" || in.AccountNumber == "" || in.Amount <= 0 || in.PIN == "" {
		return nil, ErrInvalidInput
	}

	payer, err := e.resolvePayer(ctx, in.AccountNumber)
	if err != nil {
		return nil, err
	}
	if err := auth.VerifyPIN(payer, in.PIN); err != nil {
		return nil, err
	}
	if payer.Account.Balance < in.Amount {
		return nil, storage.ErrInsufficientFunds
	}

	tx := newTransaction(payer, in.Amount, models.AIRTIME,
		models.Merchant{
			RecipientID:   in.PhoneNumber,
			RecipientName: "Airtime Provider",
		},
		fmt.Sprintf("Airtime purchase of %d NGN by %s for phone number %s", in.Amount, payer.FullName(), in.PhoneNumber),
	)

	return e.commit(ctx, tx, func(ctx context.Context) error {
		return e.Store.Debit(ctx, tx, in.AccountNumber)
	})
}

// BillPaymentInput is a bill-payment request. There is no amount: it always
// comes from the bill catalog.
type BillPaymentInput struct {
	BillType      string
	AccountNumber string
	PIN           string
}

// PayBill pays a catalog bill. The charged amount is the catalog value for
// the bill type, regardless of anything the caller supplied.
func (e *Engine) PayBill(ctx context.Context, in BillPaymentInput) (*models.Transaction, error) {
	if in.BillType == "" || in.AccountNumber == "" || in.PIN == "" {
		return nil, ErrInvalidInput
	}
	amount, ok := models.BillAmount(in.BillType)
	if !ok {
		return nil, ErrInvalidBillType
	}

	payer, err := e.resolvePayer(ctx, in.AccountNumber)
	if err != nil {
		return nil, err
	}
	if err := auth.VerifyPIN(payer, in.PIN); err != nil {
		return nil, err
	}
	if payer.Account.Balance < amount {
		return nil, storage.ErrInsufficientFunds
	}

	tx := newTransaction(payer, amount, models.BILLPAYMENT,
		models.Merchant{
			RecipientID:   in.BillType,
			RecipientName: in.BillType,
		},
		fmt.Sprintf("Bill payment of %d NGN by %s for %s", amount, payer.FullName(), in.BillType),
	)

	return e.commit(ctx, tx, func(ctx context.Context) error {
		return e.Store.Debit(ctx, tx, in.AccountNumber)
	})
}

func (e *Engine) resolvePayer(ctx context.Context, accountNumber string) (*models.User, error) {
	payer, err := e.Store.GetUserByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrPayerNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return payer, nil
}

// newTransaction builds a PENDING record with a fresh id and the payer and
// merchant descriptors filled in. Fees are always zero today.
func newTransaction(payer *models.User, amount int64, kind models.TransactionType, merchant models.Merchant, summary string) *models.Transaction {
	return &models.Transaction{
		ID:            uuid.NewString(),
		Amount:        amount,
		Currency:      currencyNGN,
		Status:        models.PENDING,
		PaymentMethod: kind,
		Type:          kind,
		Payer: models.Party{
			Name:    payer.FullName(),
			Email:   payer.Email,
			PayerID: payer.Account.AccountNumber,
		},
		Merchant:    merchant,
		PayerID:     payer.Account.AccountNumber,
		RecipientID: merchant.RecipientID,
		Fee:         0,
		Processor:   processorName,
		Summary:     summary,
		CreatedAt:   time.Now().UTC(),
	}
}

// commit moves the transaction to its terminal state. The apply callback
// performs the atomic balance mutation + record write. A conditional funds
// failure leaves no trace; any other store failure produces a best-effort
// FAILED record, which -- because apply is atomic -- reliably means no
// balance was touched.
func (e *Engine) commit(ctx context.Context, tx *models.Transaction, apply func(context.Context) error) (*models.Transaction, error) {
	tx.Status = models.COMPLETED
	if err := apply(ctx); err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) {
			return nil, storage.ErrInsufficientFunds
		}
		tx.Status = models.FAILED
		if recErr := e.Store.RecordTransaction(ctx, tx); recErr != nil {
			slog.Error("failed to record failed transaction", "transaction_id", tx.ID, "error", recErr)
		}
		return tx, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if e.Events != nil {
		event := events.TransactionEvent{
			Type:        events.TransactionCompleted,
			Transaction: mapping.ToApiTransaction(tx),
		}
		if err := e.Events.Publish(ctx, event); err != nil {
			slog.Error("CRITICAL: transaction committed but event publish failed", "transaction_id", tx.ID, "error", err)
		}
	}

	return tx, nil
}
