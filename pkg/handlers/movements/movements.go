// Package movements exposes the three money-movement endpoints: transfer,
// airtime, and bill payment.
package movements

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/ibiri/banking/pkg/api"
	"github.com/ibiri/banking/pkg/auth"
	"github.com/ibiri/banking/pkg/engine"
	"github.com/ibiri/banking/pkg/mapping"
	"github.com/ibiri/banking/pkg/models"
	"github.com/ibiri/banking/pkg/storage"
)

// MovementsHandler holds the dependencies for the movement endpoints.
type MovementsHandler struct {
	Engine *engine.Engine
}

// NewMovementsHandler creates a new MovementsHandler.
func NewMovementsHandler(eng *engine.Engine) *MovementsHandler {
	return &MovementsHandler{Engine: eng}
}

// Transfer handles POST /transfer.
func (h *MovementsHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req api.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	tx, err := h.Engine.Transfer(r.Context(), engine.TransferInput{
		SenderAccountNumber:    req.SenderAccountNumber,
		RecipientAccountNumber: req.RecipientAccountNumber,
		Amount:                 req.Amount,
		PIN:                    req.Pin,
	})
	respondMovement(w, "Transfer successful", tx, err)
}

// Airtime handles POST /airtime.
func (h *MovementsHandler) Airtime(w http.ResponseWriter, r *http.Request) {
	var req api.AirtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	tx, err := h.Engine.Airtime(r.Context(), engine.AirtimeInput{
		PhoneNumber:   req.PhoneNumber,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		PIN:           req.Pin,
	})
	respondMovement(w, "Airtime purchase successful", tx, err)
}

// PayBill handles POST /bills. Any amount in the request body is ignored;
// the catalog decides what a bill costs.
func (h *MovementsHandler) PayBill(w http.ResponseWriter, r *http.Request) {
	var req api.BillPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	tx, err := h.Engine.PayBill(r.Context(), engine.BillPaymentInput{
		BillType:      req.BillType,
		AccountNumber: req.AccountNumber,
		PIN:           req.Pin,
	})
	respondMovement(w, fmt.Sprintf("%s bill payment successful", req.BillType), tx, err)
}

// ListBills handles GET /bills: the catalog of payable bill types and their
// fixed amounts.
func (h *MovementsHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	names := models.BillTypes()
	sort.Strings(names)

	bills := make([]api.Bill, 0, len(names))
	for _, name := range names {
		amount, _ := models.BillAmount(name)
		bills = append(bills, api.Bill{Type: name, Amount: amount})
	}
	writeJSON(w, http.StatusOK, api.BillListResponse{Bills: bills})
}

// respondMovement translates an engine result into the wire response. Every
// movement endpoint shares the same error surface.
func respondMovement(w http.ResponseWriter, successMessage string, tx *models.Transaction, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, api.MovementResponse{
			Message:     successMessage,
			Transaction: mapping.ToApiTransaction(tx),
		})
		return
	}

	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input data", nil)
	case errors.Is(err, engine.ErrInvalidBillType):
		writeError(w, http.StatusBadRequest, "Invalid bill type", nil)
	case errors.Is(err, auth.ErrPinNotSet):
		writeError(w, http.StatusBadRequest, "PIN not set. Please set up your transaction PIN.", nil)
	case errors.Is(err, auth.ErrInvalidPin):
		writeError(w, http.StatusBadRequest, "Invalid PIN", nil)
	case errors.Is(err, storage.ErrInsufficientFunds):
		writeError(w, http.StatusBadRequest, "Insufficient funds", nil)
	case errors.Is(err, engine.ErrPayerNotFound):
		writeError(w, http.StatusNotFound, "Sender account not found", nil)
	case errors.Is(err, engine.ErrRecipientNotFound):
		writeError(w, http.StatusNotFound, "Recipient account not found", nil)
	default:
		slog.Error("movement failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error", tx)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, tx *models.Transaction) {
	resp := api.ErrorResponse{Error: message}
	if tx != nil {
		resp.Transaction = mapping.ToApiTransaction(tx)
	}
	writeJSON(w, status, resp)
}
