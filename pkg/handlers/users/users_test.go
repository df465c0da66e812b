package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ibiri/banking/pkg/accountnumber"
	"github.com/ibiri/banking/pkg/api"
	"github.com/ibiri/banking/pkg/auth"
	"github.com/ibiri/banking/pkg/middleware"
	"github.com/ibiri/banking/pkg/models"
	"github.com/ibiri/banking/pkg/storage"
	"github.com/ibiri/banking/pkg/storage/mocks"
)

const testSecret = "test-secret"

func doJSON(t *testing.T, handler http.HandlerFunc, body any, email string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	if email != "" {
		req = req.WithContext(middleware.WithEmail(req.Context(), email))
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestRegister(t *testing.T) {
	t.Run("creates a user with a fresh checking account", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		store.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ada@example.com" &&
				u.PasswordHash != "" && u.PasswordHash != "s3cretpass" &&
				accountnumber.Valid(u.Account.AccountNumber) &&
				u.Account.Balance == 0 &&
				u.Account.Type == models.CHECKING &&
				len(u.CreditScores) == 1 && u.CreditScores[0].Score == 300
		})).Return(nil)

		rr := doJSON(t, h.Register, api.RegisterRequest{
			Email:     "ada@example.com",
			Password:  "s3cretpass",
			FirstName: "Ada",
			LastName:  "Obi",
		}, "")
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp api.RegisterResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User registered successfully", resp.Message)
		require.NotNil(t, resp.User)
		assert.Equal(t, "ada@example.com", resp.User.Email)
		require.Len(t, resp.User.BankAccount, 1)
		assert.Equal(t, "Ada Obi", resp.User.BankAccount[0].Name)
	})

	t.Run("duplicate email", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		store.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(storage.ErrUserExists)

		rr := doJSON(t, h.Register, api.RegisterRequest{
			Email:     "ada@example.com",
			Password:  "s3cretpass",
			FirstName: "Ada",
			LastName:  "Obi",
		}, "")
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User already exists", resp.Error)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		cases := []struct {
			name string
			req  api.RegisterRequest
			want string
		}{
			{"missing fields", api.RegisterRequest{Email: "ada@example.com"}, "All fields are required"},
			{"bad email", api.RegisterRequest{Email: "not-an-email", Password: "s3cretpass", FirstName: "Ada", LastName: "Obi"}, "Invalid email address"},
			{"short password", api.RegisterRequest{Email: "ada@example.com", Password: "short", FirstName: "Ada", LastName: "Obi"}, "Password must be at least 8 characters"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rr := doJSON(t, h.Register, tc.req, "")
				require.Equal(t, http.StatusBadRequest, rr.Code)

				var resp api.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.want, resp.Error)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cretpass")
	require.NoError(t, err)
	user := &models.User{
		Email:        "ada@example.com",
		FirstName:    "Ada",
		LastName:     "Obi",
		PasswordHash: hash,
		Account:      models.BankAccount{AccountNumber: "1111111111", Balance: 500},
	}

	t.Run("successful login returns a parseable token and sets the cookie", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		store.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(user, nil)

		rr := doJSON(t, h.Login, api.LoginRequest{Email: "ada@example.com", Password: "s3cretpass"}, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)

		email, err := auth.ParseToken(testSecret, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", email)

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Equal(t, resp.Token, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("unknown email", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		store.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, storage.ErrUserNotFound)

		rr := doJSON(t, h.Login, api.LoginRequest{Email: "ghost@example.com", Password: "whatever1"}, "")
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid credentials", resp.Error)
	})

	t.Run("wrong password", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		store.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(user, nil)

		rr := doJSON(t, h.Login, api.LoginRequest{Email: "ada@example.com", Password: "wrongpass"}, "")
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Incorrect Password", resp.Error)
	})
}

func TestMe(t *testing.T) {
	t.Run("returns the sanitized profile", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		user := &models.User{
			Email:        "ada@example.com",
			FirstName:    "Ada",
			LastName:     "Obi",
			PasswordHash: "should-never-appear",
			PINHash:      "should-never-appear",
			HasPIN:       true,
			Account:      models.BankAccount{AccountNumber: "1111111111", Balance: 500},
		}
		store.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/user", nil)
		req = req.WithContext(middleware.WithEmail(req.Context(), "ada@example.com"))
		rr := httptest.NewRecorder()
		h.Me(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "should-never-appear")

		var resp api.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.HasPin)
		require.Len(t, resp.BankAccount, 1)
		assert.Equal(t, int64(500), resp.BankAccount[0].Balance)
	})

	t.Run("no auth context", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		req := httptest.NewRequest(http.MethodGet, "/user", nil)
		rr := httptest.NewRecorder()
		h.Me(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSetPin(t *testing.T) {
	t.Run("hashes and stores a valid pin", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		store.On("SetPIN", mock.Anything, "ada@example.com", mock.MatchedBy(func(hash string) bool {
			return hash != "" && hash != "1234"
		})).Return(nil)

		rr := doJSON(t, h.SetPin, api.SetPinRequest{Pin: "1234"}, "ada@example.com")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "PIN set successfully", resp.Message)
	})

	t.Run("rejects malformed pins", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		for _, pin := range []string{"", "12", "12345", "12a4"} {
			rr := doJSON(t, h.SetPin, api.SetPinRequest{Pin: pin}, "ada@example.com")
			require.Equal(t, http.StatusBadRequest, rr.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Invalid PIN", resp.Error)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		store.On("SetPIN", mock.Anything, "ghost@example.com", mock.AnythingOfType("string")).
			Return(storage.ErrUserNotFound)

		rr := doJSON(t, h.SetPin, api.SetPinRequest{Pin: "1234"}, "ghost@example.com")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateCreditScore(t *testing.T) {
	t.Run("keeps the previous score as lastScore", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		user := &models.User{
			Email: "ada@example.com",
			CreditScores: []models.CreditScore{{
				Score: 410,
				Date:  time.Now().UTC().Add(-24 * time.Hour),
				Range: models.CreditScoreRange{Min: 300, Max: 850},
			}},
		}
		store.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(user, nil)
		store.On("UpdateCreditScore", mock.Anything, "ada@example.com", mock.MatchedBy(func(cs models.CreditScore) bool {
			return cs.Score == 450 && cs.LastScore == 410 && cs.Source == "Experian"
		})).Return(nil)

		rr := doJSON(t, h.UpdateCreditScore, api.UpdateCreditScoreRequest{
			Score:   450,
			Factors: []string{"On-time bill payment"},
		}, "ada@example.com")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.UpdateCreditScoreResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.CreditScore)
		assert.Equal(t, 450, resp.CreditScore.Score)
		assert.Equal(t, 410, resp.CreditScore.LastScore)
	})

	t.Run("rejects scores outside the range", func(t *testing.T) {
		store := mocks.NewStorage(t)
		h := NewUsersHandler(store, testSecret)

		for _, score := range []int{299, 851, -1} {
			rr := doJSON(t, h.UpdateCreditScore, api.UpdateCreditScoreRequest{Score: score}, "ada@example.com")
			require.Equal(t, http.StatusBadRequest, rr.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Invalid credit score", resp.Error)
		}
	})
}
