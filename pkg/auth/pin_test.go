package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ibiri/banking/pkg/models"
)

func TestHashPIN(t *testing.T) {
	t.Run("Valid PIN", func(t *testing.T) {
		hash, err := HashPIN("1234")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "1234", hash)
	})

	t.Run("Rejects Bad Formats", func(t *testing.T) {
		for _, pin := range []string{"", "123", "12345", "12a4", "12 4", "١٢٣٤"} {
			_, err := HashPIN(pin)
			assert.ErrorIs(t, err, ErrInvalidPinFormat, "pin %q", pin)
		}
	})
}

func TestVerifyPIN(t *testing.T) {
	hash, err := HashPIN("4321")
	assert.NoError(t, err)

	t.Run("Correct PIN", func(t *testing.T) {
		u := &models.User{HasPIN: true, PINHash: hash}
		assert.NoError(t, VerifyPIN(u, "4321"))
	})

	t.Run("Wrong PIN", func(t *testing.T) {
		u := &models.User{HasPIN: true, PINHash: hash}
		assert.ErrorIs(t, VerifyPIN(u, "0000"), ErrInvalidPin)
	})

	t.Run("PIN Never Set", func(t *testing.T) {
		u := &models.User{}
		assert.ErrorIs(t, VerifyPIN(u, "4321"), ErrPinNotSet)
	})

	t.Run("Flag Set But Hash Missing", func(t *testing.T) {
		u := &models.User{HasPIN: true}
		assert.ErrorIs(t, VerifyPIN(u, "4321"), ErrPinNotSet)
	})
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	assert.NoError(t, err)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter2"))
}

func TestTokens(t *testing.T) {
	const secret = "test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := IssueToken(secret, "ada@example.com")
		assert.NoError(t, err)

		email, err := ParseToken(secret, token)
		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", email)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := IssueToken(secret, "ada@example.com")
		assert.NoError(t, err)

		_, err = ParseToken("other-secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := ParseToken(secret, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
