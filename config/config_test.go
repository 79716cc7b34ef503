package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{"ENVIRONMENT": "production", "EMPTY": ""}

	assert.Equal(t, "production", GetString(cfg, "ENVIRONMENT", "development"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(cfg, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "ENVIRONMENT", "fallback"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"PORT": "8080", "READ_TIMEOUT_SECONDS": "not a number"}

	assert.Equal(t, 8080, GetInt(cfg, "PORT", 3000))
	assert.Equal(t, 180, GetInt(cfg, "READ_TIMEOUT_SECONDS", 180))
	assert.Equal(t, 3000, GetInt(cfg, "MISSING", 3000))
	assert.Equal(t, 3000, GetInt(nil, "PORT", 3000))
}
