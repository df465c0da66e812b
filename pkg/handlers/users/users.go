// Package users exposes registration, login, profile, PIN setup, and the
// display credit-score update.
package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ibiri/banking/pkg/accountnumber"
	"github.com/ibiri/banking/pkg/api"
	"github.com/ibiri/banking/pkg/auth"
	"github.com/ibiri/banking/pkg/mapping"
	"github.com/ibiri/banking/pkg/middleware"
	"github.com/ibiri/banking/pkg/models"
	"github.com/ibiri/banking/pkg/storage"
)

// UsersHandler holds the dependencies for user-facing account management.
type UsersHandler struct {
	Store     storage.UserStore
	JWTSecret string
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(store storage.UserStore, jwtSecret string) *UsersHandler {
	return &UsersHandler{Store: store, JWTSecret: jwtSecret}
}

// Register handles POST /register. Every new user gets one checking account
// with a zero balance and a floor credit score.
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateRegistration(&req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: passwordHash,
		Account: models.BankAccount{
			AccountNumber: accountnumber.Generate(),
			Name:          req.FirstName + " " + req.LastName,
			Type:          models.CHECKING,
			Balance:       0,
		},
		CreditScores: []models.CreditScore{{
			Score:   300,
			Date:    now,
			Range:   models.CreditScoreRange{Min: 300, Max: 850},
			Factors: []string{},
			Source:  "Experian",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.Store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		slog.Error("failed to create user", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, api.RegisterResponse{
		Message: "User registered successfully",
		User:    mapping.ToApiUser(user),
	})
}

// Login handles POST /login. A successful login issues a one-hour JWT,
// returned in the body and as an HttpOnly cookie.
func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		slog.Error("failed to look up user", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusBadRequest, "Incorrect Password")
		return
	}

	token, err := auth.IssueToken(h.JWTSecret, user.Email)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Hour.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, api.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    mapping.ToApiUser(user),
	})
}

// Me handles GET /user for the authenticated caller.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.Store.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to look up user", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiUser(user))
}

// SetPin handles POST /user/pin.
func (h *UsersHandler) SetPin(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req api.SetPinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pinHash, err := auth.HashPIN(req.Pin)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid PIN")
		return
	}

	if err := h.Store.SetPIN(r.Context(), email, pinHash); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to set pin", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "PIN set successfully"})
}

// UpdateCreditScore handles POST /user/credit-score. The score is display
// gamification only; it never gates a movement.
func (h *UsersHandler) UpdateCreditScore(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req api.UpdateCreditScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Score < 300 || req.Score > 850 {
		writeError(w, http.StatusBadRequest, "Invalid credit score")
		return
	}

	user, err := h.Store.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to look up user", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	score := models.CreditScore{
		Score:   req.Score,
		Date:    time.Now().UTC(),
		Range:   models.CreditScoreRange{Min: 300, Max: 850},
		Factors: req.Factors,
		Source:  "Experian",
	}
	if len(user.CreditScores) > 0 {
		score.LastScore = user.CreditScores[0].Score
	}
	if score.Factors == nil {
		score.Factors = []string{}
	}

	if err := h.Store.UpdateCreditScore(r.Context(), email, score); err != nil {
		slog.Error("failed to update credit score", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, api.UpdateCreditScoreResponse{
		Message:     "Credit score updated successfully",
		CreditScore: mapping.ToApiCreditScore(&score),
	})
}

func validateRegistration(req *api.RegisterRequest) string {
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return "All fields are required"
	}
	if !strings.Contains(req.Email, "@") {
		return "Invalid email address"
	}
	if len(req.Password) < 8 {
		return "Password must be at least 8 characters"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: message})
}
