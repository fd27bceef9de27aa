package config

import (
	"fmt"
	"time"
)

// WalletApp holds wallet-level settings derived from the structured config.
type WalletApp struct {
	// IdentifierVersion is the name version tag of identifiers on KERIA.
	IdentifierVersion string
	// Passcode is the KERIA passcode supplied for this run, if any.
	Passcode string
	// Password unlocks the sealed passcode.
	Password string
}

// WalletKeria holds the KERIA endpoints used by the adapter.
type WalletKeria struct {
	URL                string
	BootURL            string
	RequestTimeout     time.Duration
	OobiResolveTimeout time.Duration
}

// WalletDB contains local database connection settings.
type WalletDB struct {
	// DSN is the SQLite file path, or ":memory:".
	DSN string
}

// WalletStorage groups local storage settings.
type WalletStorage struct {
	DB WalletDB
}

// WalletServer holds the control API listener settings.
type WalletServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	APIToken       string
}

// WalletWorkers contains background job intervals.
type WalletWorkers struct {
	OperationPollInterval time.Duration
	SyncInterval          time.Duration
	ReconnectInterval     time.Duration
}

// WalletLog contains logging settings.
type WalletLog struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// WalletConfig is the configuration view consumed by the wallet process.
type WalletConfig struct {
	App     WalletApp
	Keria   WalletKeria
	Storage WalletStorage
	Server  WalletServer
	Workers WalletWorkers
	Log     WalletLog

	// Args holds the positional arguments left after flag parsing.
	Args []string
}

// GetWalletConfig builds and validates the wallet configuration view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetWalletConfig(args []string) (*WalletConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	walletCfg := newWalletConfig(cfg)
	walletCfg.Args = rest

	return walletCfg, walletCfg.validate()
}

func newWalletConfig(cfg *StructuredConfig) *WalletConfig {
	return &WalletConfig{
		App: WalletApp{
			IdentifierVersion: cfg.App.IdentifierVersion,
			Passcode:          cfg.App.Passcode,
			Password:          cfg.App.Password,
		},
		Keria: WalletKeria{
			URL:                cfg.Keria.URL,
			BootURL:            cfg.Keria.BootURL,
			RequestTimeout:     cfg.Keria.RequestTimeout,
			OobiResolveTimeout: cfg.Keria.OobiResolveTimeout,
		},
		Storage: WalletStorage{
			DB: WalletDB{DSN: cfg.Storage.DB.DSN},
		},
		Server: WalletServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			APIToken:       cfg.Server.APIToken,
		},
		Workers: WalletWorkers{
			OperationPollInterval: cfg.Workers.OperationPollInterval,
			SyncInterval:          cfg.Workers.SyncInterval,
			ReconnectInterval:     cfg.Workers.ReconnectInterval,
		},
		Log: WalletLog{
			Level:      cfg.Log.Level,
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		},
	}
}
