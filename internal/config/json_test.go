package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": { "identifier_version": "1.2.0.3", "password": "hunter2" },
		"keria": {
			"url": "https://keria.example.com",
			"boot_url": "https://keria.example.com:3903",
			"request_timeout": "15s",
			"oobi_resolve_timeout": "5s"
		},
		"storage": { "db": { "dsn": "/data/wallet.db" } },
		"server": { "http_address": "127.0.0.1:8787", "request_timeout": "20s", "api_token": "s3cret" },
		"workers": { "operation_poll_interval": "1s", "sync_interval": "5m", "reconnect_interval": 1000000000 },
		"log": { "level": "warn", "file": "/data/wallet.log", "max_size_mb": 1, "max_backups": 1, "max_age_days": 1 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "1.2.0.3", cfg.App.IdentifierVersion)
	assert.Equal(t, "hunter2", cfg.App.Password)
	assert.Equal(t, "https://keria.example.com", cfg.Keria.URL)
	assert.Equal(t, 15*time.Second, cfg.Keria.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Keria.OobiResolveTimeout)
	assert.Equal(t, "/data/wallet.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "s3cret", cfg.Server.APIToken)
	assert.Equal(t, time.Second, cfg.Workers.OperationPollInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, time.Second, cfg.Workers.ReconnectInterval)
	assert.Equal(t, Log{Level: "warn", File: "/data/wallet.log", MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}, cfg.Log)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"keria": `), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1500`, want: 1500 * time.Nanosecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
