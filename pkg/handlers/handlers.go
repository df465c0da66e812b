// Package handlers wires the HTTP surface together.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ibiri/banking/pkg/engine"
	"github.com/ibiri/banking/pkg/handlers/movements"
	"github.com/ibiri/banking/pkg/handlers/transactions"
	"github.com/ibiri/banking/pkg/handlers/users"
	"github.com/ibiri/banking/pkg/middleware"
	"github.com/ibiri/banking/pkg/storage"
)

// NewRouter builds the chi router with all routes mounted. Movement and
// ledger endpoints are gated by the transaction PIN rather than the session,
// so they stay outside the authenticated group, as do register and login.
func NewRouter(store storage.Storage, eng *engine.Engine, jwtSecret string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewStructuredLogger(logger))

	movementsHandler := movements.NewMovementsHandler(eng)
	transactionsHandler := transactions.NewTransactionsHandler(store)
	usersHandler := users.NewUsersHandler(store, jwtSecret)

	r.Post("/register", usersHandler.Register)
	r.Post("/login", usersHandler.Login)

	r.Post("/transfer", movementsHandler.Transfer)
	r.Post("/airtime", movementsHandler.Airtime)
	r.Get("/bills", movementsHandler.ListBills)
	r.Post("/bills", movementsHandler.PayBill)
	r.Get("/transactions", transactionsHandler.ListTransactions)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))
		r.Get("/user", usersHandler.Me)
		r.Post("/user/pin", usersHandler.SetPin)
		r.Post("/user/credit-score", usersHandler.UpdateCreditScore)
	})

	return r
}
