package mapping

import (
	"github.com/ibiri/banking/pkg/api"
	"github.com/ibiri/banking/pkg/models"
)

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Status:        string(tx.Status),
		PaymentMethod: string(tx.PaymentMethod),
		Type:          string(tx.Type),
		Payer: api.Party{
			Name:    tx.Payer.Name,
			Email:   tx.Payer.Email,
			PayerID: tx.Payer.PayerID,
		},
		Merchant: api.Merchant{
			RecipientID:   tx.Merchant.RecipientID,
			RecipientName: tx.Merchant.RecipientName,
		},
		Fee:       tx.Fee,
		Processor: tx.Processor,
		Summary:   tx.Summary,
		CreatedAt: tx.CreatedAt,
	}
}

// ToApiTransactions converts a slice of domain transactions.
func ToApiTransactions(txs []models.Transaction) []api.Transaction {
	out := make([]api.Transaction, len(txs))
	for i := range txs {
		out[i] = *ToApiTransaction(&txs[i])
	}
	return out
}

// ToApiPagination converts domain pagination metadata.
func ToApiPagination(p *models.Pagination) api.Pagination {
	return api.Pagination{
		CurrentPage:       p.CurrentPage,
		TotalPages:        p.TotalPages,
		TotalTransactions: p.TotalTransactions,
		Limit:             p.Limit,
	}
}

// ToApiCreditScore converts one credit-score record.
func ToApiCreditScore(cs *models.CreditScore) *api.CreditScore {
	return &api.CreditScore{
		Score:     cs.Score,
		LastScore: cs.LastScore,
		Date:      cs.Date,
		Range:     api.CreditScoreRange{Min: cs.Range.Min, Max: cs.Range.Max},
		Factors:   cs.Factors,
		Source:    cs.Source,
	}
}

// ToApiUser converts a domain User to its sanitized API form. The account
// is presented as a one-element list to match the persisted document shape
// clients already consume.
func ToApiUser(u *models.User) *api.User {
	scores := make([]api.CreditScore, len(u.CreditScores))
	for i := range u.CreditScores {
		scores[i] = *ToApiCreditScore(&u.CreditScores[i])
	}
	return &api.User{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		HasPin:    u.HasPIN,
		BankAccount: []api.BankAccount{{
			AccountNumber: u.Account.AccountNumber,
			Name:          u.Account.Name,
			Type:          string(u.Account.Type),
			Balance:       u.Account.Balance,
		}},
		CreditScore: scores,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
