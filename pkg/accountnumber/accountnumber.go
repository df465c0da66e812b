// Package accountnumber generates and validates the externally visible
// account identifiers: nine random digits plus a Luhn check digit.
package accountnumber

import (
	"math/rand"
)

// Length is the total number of digits in an account number.
const Length = 10

// Generate returns a new Luhn-checksummed account number. Account numbers
// are identifiers, not secrets, so math/rand is sufficient; uniqueness is
// enforced by the store at registration.
func Generate() string {
	digits := make([]byte, Length)
	for i := 0; i < Length-1; i++ {
		digits[i] = byte('0' + rand.Intn(10))
	}
	digits[Length-1] = byte('0' + checkDigit(digits[:Length-1]))
	return string(digits)
}

// Valid reports whether s is a well-formed account number with a correct
// Luhn check digit.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return checkDigit([]byte(s[:Length-1])) == int(s[Length-1]-'0')
}

// checkDigit computes the Luhn check digit for a string of ASCII digits,
// doubling from the rightmost digit.
func checkDigit(digits []byte) int {
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}
