package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {
			"token_sign_key": "json-key",
			"token_issuer": "json-issuer",
			"token_duration": "168h",
			"version": "0.9.0"
		},
		"chat": {
			"provider": "openai",
			"openai_key": "sk-json",
			"openai_model": "gpt-4o-mini"
		},
		"storage": {"db": {"dsn": "postgres://localhost/voxai"}},
		"server": {"http_address": ":9090", "request_timeout": "45s"},
		"adapter": {"http_address": "api.voxai.local:9090", "request_timeout": "20s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "openai", cfg.Chat.Provider)
	assert.Equal(t, "sk-json", cfg.Chat.OpenAIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Chat.OpenAIModel)
	assert.Equal(t, "postgres://localhost/voxai", cfg.Storage.DB.DSN)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "api.voxai.local:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also be given as raw nanoseconds
	path := writeJSONFile(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nope/missing.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeJSONFile(t, `{not json`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalBadString(t *testing.T) {
	var d Duration
	err := d.UnmarshalJSON([]byte(`"nonsense"`))
	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
