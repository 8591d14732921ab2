package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJerseyNumber(t *testing.T) {
	t.Run("accepts boundaries", func(t *testing.T) {
		assert.NoError(t, JerseyNumber(0))
		assert.NoError(t, JerseyNumber(999))
	})

	t.Run("rejects out of range", func(t *testing.T) {
		assert.ErrorIs(t, JerseyNumber(-1), ErrJerseyNumberOutOfRange)
		assert.ErrorIs(t, JerseyNumber(1000), ErrJerseyNumberOutOfRange)
	})
}

func TestOptionalJerseyNumber(t *testing.T) {
	t.Run("nil is valid", func(t *testing.T) {
		assert.NoError(t, OptionalJerseyNumber(nil))
	})

	t.Run("set value is range checked", func(t *testing.T) {
		n := 1000
		assert.ErrorIs(t, OptionalJerseyNumber(&n), ErrJerseyNumberOutOfRange)
	})
}

func TestDisplayName(t *testing.T) {
	t.Run("trims and accepts", func(t *testing.T) {
		clean, err := DisplayName("  Alice  ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", clean)
	})

	t.Run("rejects short names after trimming", func(t *testing.T) {
		_, err := DisplayName(" a ")
		assert.ErrorIs(t, err, ErrDisplayNameTooShort)
	})

	t.Run("rejects overly long names", func(t *testing.T) {
		long := make([]byte, DisplayNameMaxLen+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err := DisplayName(string(long))
		assert.ErrorIs(t, err, ErrDisplayNameTooLong)
	})
}

func TestInviteCode(t *testing.T) {
	t.Run("normalizes", func(t *testing.T) {
		clean, err := InviteCode("  ab12cd  ")
		require.NoError(t, err)
		assert.Equal(t, "AB12CD", clean)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := InviteCode("   ")
		assert.ErrorIs(t, err, ErrEmptyCode)
	})
}
