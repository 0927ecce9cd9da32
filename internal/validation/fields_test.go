package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidateRequiredField(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		fieldName   string
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "empty_value_fails",
			value:       "",
			fieldName:   "First name",
			wantSuccess: false,
			wantMessage: "First name is required",
		},
		{
			name:        "whitespace_only_fails",
			value:       "   \t ",
			fieldName:   "Biography",
			wantSuccess: false,
			wantMessage: "Biography is required",
		},
		{
			name:        "non_blank_passes",
			value:       "Ursula",
			fieldName:   "First name",
			wantSuccess: true,
			wantMessage: "Field is valid",
		},
		{
			name:        "padded_value_passes",
			value:       "  Le Guin  ",
			fieldName:   "Last name",
			wantSuccess: true,
			wantMessage: "Field is valid",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateRequiredField(tc.value, tc.fieldName)
			assert.Equal(t, tc.wantSuccess, res.Success)
			assert.Equal(t, tc.wantMessage, res.Message)
		})
	}
}

func Test_ValidateRequiredFields_ShortCircuitsOnFirstFailure(t *testing.T) {
	res := ValidateRequiredFields([]RequiredField{
		{Value: "Ursula", Name: "First name"},
		{Value: "", Name: "Last name"},
		{Value: "", Name: "Biography"},
	})

	assert.False(t, res.Success)
	assert.Equal(t, "Last name is required", res.Message)
}

func Test_ValidateRequiredFields_AllValid(t *testing.T) {
	res := ValidateRequiredFields([]RequiredField{
		{Value: "Ursula", Name: "First name"},
		{Value: "Le Guin", Name: "Last name"},
	})

	assert.True(t, res.Success)
	assert.Equal(t, "All fields are valid", res.Message)
}
