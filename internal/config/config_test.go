package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "MONGO_URI", "DB_NAME", "WEB_PORT", "API_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "", cfg.Mongo.URI)
	assert.Equal(t, "tictacnext", cfg.Mongo.Database)
	assert.Equal(t, ":8080", cfg.Web.Addr)
	assert.Equal(t, "http://localhost:3000/api/v1", cfg.Web.APIBaseURL)
}

func TestLoadPortForms(t *testing.T) {
	t.Setenv("PORT", "4000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Server.Addr)

	t.Setenv("PORT", "127.0.0.1:4000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4000", cfg.Server.Addr)

	t.Setenv("PORT", "not a port")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "games")
	t.Setenv("API_BASE_URL", "http://api.internal/api/v1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "games", cfg.Mongo.Database)
	assert.Equal(t, "http://api.internal/api/v1", cfg.Web.APIBaseURL)
}
