package models

import (
	"time"
)

// TransactionStatus defines the lifecycle states of a transaction.
// A transaction is built in memory as PENDING and reaches exactly one
// terminal state; there are no retries and no resumption.
type TransactionStatus string

const (
	PENDING   TransactionStatus = "pending"
	COMPLETED TransactionStatus = "completed"
	FAILED    TransactionStatus = "failed"
)

// TransactionType identifies the money-movement operation that produced a
// transaction.
type TransactionType string

const (
	TRANSFER    TransactionType = "transfer"
	AIRTIME     TransactionType = "airtime"
	BILLPAYMENT TransactionType = "bill_payment"
)

// AccountType is the kind of bank account. Only checking accounts are
// issued today.
type AccountType string

const (
	CHECKING AccountType = "checking"
	SAVINGS  AccountType = "savings"
)

// BankAccount is the single account embedded in a User record. Balance is
// held in whole NGN to keep arithmetic exact.
type BankAccount struct {
	AccountNumber string      `json:"accountNumber" dynamodbav:"account_number"`
	Name          string      `json:"name" dynamodbav:"name"`
	Type          AccountType `json:"type" dynamodbav:"type"`
	Balance       int64       `json:"balance" dynamodbav:"balance"`
}

// CreditScoreRange is the fixed bounds the display score moves within.
type CreditScoreRange struct {
	Min int `json:"min" dynamodbav:"min"`
	Max int `json:"max" dynamodbav:"max"`
}

// CreditScore is a display-only gamification record. It carries no
// financial meaning and nothing in the ledger depends on it.
type CreditScore struct {
	Score     int              `json:"score" dynamodbav:"score"`
	LastScore int              `json:"lastScore" dynamodbav:"last_score"`
	Date      time.Time        `json:"date" dynamodbav:"date"`
	Range     CreditScoreRange `json:"range" dynamodbav:"range"`
	Factors   []string         `json:"factors" dynamodbav:"factors"`
	Source    string           `json:"source" dynamodbav:"source"`
}

// User is the internal domain model for a registered user. Each user owns
// exactly one bank account, embedded in the same record. AccountNumber is a
// top-level copy of Account.AccountNumber so the account-number GSI can
// resolve payers and recipients without scanning.
type User struct {
	Email         string        `dynamodbav:"email"`
	FirstName     string        `dynamodbav:"first_name"`
	LastName      string        `dynamodbav:"last_name"`
	PasswordHash  string        `dynamodbav:"password_hash"`
	PINHash       string        `dynamodbav:"pin_hash,omitempty"`
	HasPIN        bool          `dynamodbav:"has_pin"`
	AccountNumber string        `dynamodbav:"account_number"`
	Account       BankAccount   `dynamodbav:"account"`
	CreditScores  []CreditScore `dynamodbav:"credit_scores"`
	CreatedAt     time.Time     `dynamodbav:"created_at"`
	UpdatedAt     time.Time     `dynamodbav:"updated_at"`
}

// FullName returns the user's display name as it appears on transaction
// records.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Party describes the paying side of a transaction.
type Party struct {
	Name    string `json:"name" dynamodbav:"name"`
	Email   string `json:"email" dynamodbav:"email"`
	PayerID string `json:"payer_id" dynamodbav:"payer_id"`
}

// Merchant describes the receiving side of a transaction. For transfers the
// recipient id is an account number; for airtime it is the phone number; for
// bill payments it is the bill type itself.
type Merchant struct {
	RecipientID   string `json:"recipient_id" dynamodbav:"recipient_id"`
	RecipientName string `json:"recipient_name" dynamodbav:"recipient_name"`
}

// Transaction is the internal domain model for one money-movement attempt.
// PayerID and RecipientID duplicate the nested descriptor ids at the top
// level for the participant GSIs.
type Transaction struct {
	ID            string            `dynamodbav:"transaction_id"`
	Amount        int64             `dynamodbav:"amount"`
	Currency      string            `dynamodbav:"currency"`
	Status        TransactionStatus `dynamodbav:"status"`
	PaymentMethod TransactionType   `dynamodbav:"payment_method"`
	Type          TransactionType   `dynamodbav:"type"`
	Payer         Party             `dynamodbav:"payer"`
	Merchant      Merchant          `dynamodbav:"merchant"`
	PayerID       string            `dynamodbav:"payer_id"`
	RecipientID   string            `dynamodbav:"recipient_id"`
	Fee           int64             `dynamodbav:"fee"`
	Processor     string            `dynamodbav:"processor"`
	Summary       string            `dynamodbav:"summary"`
	CreatedAt     time.Time         `dynamodbav:"created_at"`
}

// Pagination describes one page of a ledger query result.
type Pagination struct {
	CurrentPage       int `json:"currentPage"`
	TotalPages        int `json:"totalPages"`
	TotalTransactions int `json:"totalTransactions"`
	Limit             int `json:"limit"`
}
