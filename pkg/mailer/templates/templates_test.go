package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Render_VerifyEmail(t *testing.T) {
	subject, text, html, err := Render(VerifyEmail, map[string]any{
		"VerifyURL": "https://app.example.com/verify?token=abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Verify your email address", subject)
	assert.Contains(t, text, "https://app.example.com/verify?token=abc123")
	assert.Contains(t, html, `href="https://app.example.com/verify?token=abc123"`)
}

func Test_Render_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("password_reset", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown email template")
}
