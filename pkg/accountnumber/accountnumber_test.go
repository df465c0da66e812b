package accountnumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := Generate()
		assert.Len(t, n, Length)
		assert.True(t, Valid(n), "generated number %q failed validation", n)
		seen[n] = true
	}
	// 100 draws from a 10^9 space colliding would point at a broken generator.
	assert.Greater(t, len(seen), 90)
}

func TestValid(t *testing.T) {
	n := Generate()

	t.Run("Tampered Digit", func(t *testing.T) {
		tampered := []byte(n)
		tampered[0] = '0' + (tampered[0]-'0'+1)%10
		assert.False(t, Valid(string(tampered)))
	})

	t.Run("Wrong Length", func(t *testing.T) {
		assert.False(t, Valid(n[:Length-1]))
		assert.False(t, Valid(n+"0"))
		assert.False(t, Valid(""))
	})

	t.Run("Non Digits", func(t *testing.T) {
		assert.False(t, Valid("12345abc90"))
	})
}
