// Package auth covers the credential concerns of the API: PIN and password
// hashing/verification and the session tokens that identify authenticated
// callers. All comparisons go through bcrypt; plaintext secrets are never
// stored or compared directly.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ibiri/banking/pkg/models"
)

var (
	// ErrPinNotSet is returned when the user has never configured a PIN.
	ErrPinNotSet = errors.New("PIN not set")
	// ErrInvalidPin is returned when the supplied PIN does not match the stored hash.
	ErrInvalidPin = errors.New("invalid PIN")
	// ErrInvalidPinFormat is returned when a new PIN is not exactly 4 ASCII digits.
	ErrInvalidPinFormat = errors.New("PIN must be exactly 4 digits")
)

// bcryptCost matches the cost factor the rest of the system was provisioned
// with; raising it invalidates no existing hashes but slows new ones.
const bcryptCost = 10

// HashPIN validates the format of a new PIN and returns its bcrypt hash.
func HashPIN(pin string) (string, error) {
	if !validPinFormat(pin) {
		return "", ErrInvalidPinFormat
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPIN authorizes a money movement for the given user. It is read-only:
// no attempt counters, no lockout.
func VerifyPIN(u *models.User, pin string) error {
	if !u.HasPIN || u.PINHash == "" {
		return ErrPinNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(pin)); err != nil {
		return ErrInvalidPin
	}
	return nil
}

func validPinFormat(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// HashPassword returns the bcrypt hash of a login password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
