package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("student@example.com").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("not-an-email").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("abcdef").WithMaxLength(5).Validate())
	assert.True(t, NewStringValidation("ada_lovelace").WithPattern(CompiledPatterns.Username).Validate())
	assert.False(t, NewStringValidation("ada lovelace").WithPattern(CompiledPatterns.Username).Validate())
}

func TestPasswordStrongEnough(t *testing.T) {
	assert.True(t, PasswordStrongEnough("password1"))
	assert.False(t, PasswordStrongEnough("password"))
	assert.False(t, PasswordStrongEnough("12345678"))
	assert.False(t, PasswordStrongEnough("pass1"))
}

func TestPricePattern(t *testing.T) {
	for _, ok := range []string{"0", "19.99", "5.5", "999999.99"} {
		assert.True(t, CompiledPatterns.Price.MatchString(ok), ok)
	}
	for _, bad := range []string{"-1", "1234567", "123456789", "1.234", "1e3", ".5", "12."} {
		assert.False(t, CompiledPatterns.Price.MatchString(bad), bad)
	}
}
