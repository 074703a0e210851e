package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvPrecedence(t *testing.T) {
	Env = map[string]string{"APP_ENV": "dev"}
	t.Cleanup(func() { Env = nil })
	t.Setenv("APP_PORT", "9999")

	// loaded file beats everything
	assert.Equal(t, "dev", GetEnv("APP_ENV", "prod"))

	// process environment beats the default
	assert.Equal(t, "9999", GetEnv("APP_PORT", "4000"))

	// default when neither is set
	assert.Equal(t, "pair", GetEnv("DEAL_UNIQUENESS", "pair"))

	assert.True(t, IsDev())
}
