package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IsValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"first.last@example.org",
		"user+tag@sub.example.co",
	}
	invalid := []string{
		"not-an-email",
		"@example.com",
		"user@",
		"user@domain",
		"user@domain.c",
		"user..name@example.com",
		"user@exa..mple.com",
		".user@example.com",
		"user.@example.com",
		"user name@example.com",
	}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected valid: %s", email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected invalid: %s", email)
	}
}

func Test_ValidateAndNormalizeEmail(t *testing.T) {
	t.Run("blank_input_returns_nil", func(t *testing.T) {
		for _, in := range []string{"", "   ", "\t"} {
			got, err := ValidateAndNormalizeEmail(in)
			require.NoError(t, err)
			assert.Nil(t, got)
		}
	})

	t.Run("trims_and_lowercases", func(t *testing.T) {
		got, err := ValidateAndNormalizeEmail("  A@B.com ")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "a@b.com", *got)
	})

	t.Run("malformed_input_fails", func(t *testing.T) {
		got, err := ValidateAndNormalizeEmail("not-an-email")
		assert.Nil(t, got)
		require.Error(t, err)
		assert.Equal(t, "Invalid email format", err.Error())
	})
}
