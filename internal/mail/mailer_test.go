package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetPasswordBody(t *testing.T) {
	resetURL := "http://localhost:8080/users/reset-password/abc123"
	body := ResetPasswordBody(resetURL)

	assert.Contains(t, body, `href="`+resetURL+`"`)
	assert.Contains(t, body, "Forgot your password?")
	assert.Contains(t, body, "please ignore this email")
}
