// Package api defines the JSON request and response shapes of the HTTP
// surface. Handlers decode into these types and mapping converts between
// them and the domain models.
package api

import (
	"time"
)

// TransferRequest is the body of POST /transfer.
type TransferRequest struct {
	SenderAccountNumber    string `json:"senderAccountNumber"`
	RecipientAccountNumber string `json:"recipientAccountNumber"`
	Amount                 int64  `json:"amount"`
	Pin                    string `json:"pin"`
}

// AirtimeRequest is the body of POST /airtime.
type AirtimeRequest struct {
	PhoneNumber   string `json:"phoneNumber"`
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
	Pin           string `json:"pin"`
}

// BillPaymentRequest is the body of POST /bills. Amount is accepted for
// backward compatibility with older clients but is always overridden by the
// bill catalog.
type BillPaymentRequest struct {
	BillType      string `json:"billType"`
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount,omitempty"`
	Pin           string `json:"pin"`
}

// Party mirrors the payer descriptor of a transaction record.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	PayerID string `json:"payer_id"`
}

// Merchant mirrors the recipient descriptor of a transaction record.
type Merchant struct {
	RecipientID   string `json:"recipient_id"`
	RecipientName string `json:"recipient_name"`
}

// Transaction is the wire form of a ledger record.
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	Type          string    `json:"type"`
	Payer         Party     `json:"payer"`
	Merchant      Merchant  `json:"merchant"`
	Fee           int64     `json:"fee"`
	Processor     string    `json:"processor"`
	Summary       string    `json:"summary"`
	CreatedAt     time.Time `json:"created_at"`
}

// Bill is one payable catalog entry.
type Bill struct {
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
}

// BillListResponse is the body of GET /bills.
type BillListResponse struct {
	Bills []Bill `json:"bills"`
}

// MovementResponse is the success body of the three money-movement
// endpoints.
type MovementResponse struct {
	Message     string       `json:"message"`
	Transaction *Transaction `json:"transaction"`
}

// ErrorResponse is the failure body. Transaction is present when a record
// was built before the failure, so callers can display what was attempted.
type ErrorResponse struct {
	Error       string       `json:"error"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

// Pagination echoes the paging parameters of a ledger query along with its
// totals.
type Pagination struct {
	CurrentPage       int `json:"currentPage"`
	TotalPages        int `json:"totalPages"`
	TotalTransactions int `json:"totalTransactions"`
	Limit             int `json:"limit"`
}

// TransactionListResponse is the body of GET /transactions.
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// BankAccount is the wire form of an account, embedded in User.
type BankAccount struct {
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Balance       int64  `json:"balance"`
}

// CreditScoreRange bounds a credit score.
type CreditScoreRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CreditScore is the wire form of one display-score record.
type CreditScore struct {
	Score     int              `json:"score"`
	LastScore int              `json:"lastScore,omitempty"`
	Date      time.Time        `json:"date"`
	Range     CreditScoreRange `json:"range"`
	Factors   []string         `json:"factors"`
	Source    string           `json:"source"`
}

// User is the sanitized wire form of a user: no password hash, no PIN hash.
type User struct {
	Email       string        `json:"email"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	HasPin      bool          `json:"hasPin"`
	BankAccount []BankAccount `json:"bankAccount"`
	CreditScore []CreditScore `json:"creditScore"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

// SetPinRequest is the body of POST /user/pin.
type SetPinRequest struct {
	Pin string `json:"pin"`
}

// UpdateCreditScoreRequest is the body of POST /user/credit-score.
type UpdateCreditScoreRequest struct {
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

// UpdateCreditScoreResponse is the body of a successful score update.
type UpdateCreditScoreResponse struct {
	Message     string       `json:"message"`
	CreditScore *CreditScore `json:"creditScore"`
}

// MessageResponse is a bare success message.
type MessageResponse struct {
	Message string `json:"message"`
}
