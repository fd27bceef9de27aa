package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		IdentifierVersion string `json:"identifier_version"`
		Passcode          string `json:"passcode"`
		Password          string `json:"password"`
	} `json:"app,omitempty"`

	Keria struct {
		URL                string   `json:"url"`
		BootURL            string   `json:"boot_url"`
		RequestTimeout     Duration `json:"request_timeout"`
		OobiResolveTimeout Duration `json:"oobi_resolve_timeout"`
	} `json:"keria,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		APIToken       string   `json:"api_token"`
	} `json:"server,omitempty"`

	Workers struct {
		OperationPollInterval Duration `json:"operation_poll_interval"`
		SyncInterval          Duration `json:"sync_interval"`
		ReconnectInterval     Duration `json:"reconnect_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Level      string `json:"level"`
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		MaxAgeDays int    `json:"max_age_days"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			IdentifierVersion: jsonCfg.App.IdentifierVersion,
			Passcode:          jsonCfg.App.Passcode,
			Password:          jsonCfg.App.Password,
		},
		Keria: Keria{
			URL:                jsonCfg.Keria.URL,
			BootURL:            jsonCfg.Keria.BootURL,
			RequestTimeout:     time.Duration(jsonCfg.Keria.RequestTimeout),
			OobiResolveTimeout: time.Duration(jsonCfg.Keria.OobiResolveTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			APIToken:       jsonCfg.Server.APIToken,
		},
		Workers: Workers{
			OperationPollInterval: time.Duration(jsonCfg.Workers.OperationPollInterval),
			SyncInterval:          time.Duration(jsonCfg.Workers.SyncInterval),
			ReconnectInterval:     time.Duration(jsonCfg.Workers.ReconnectInterval),
		},
		Log: Log{
			Level:      jsonCfg.Log.Level,
			File:       jsonCfg.Log.File,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
			MaxAgeDays: jsonCfg.Log.MaxAgeDays,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
