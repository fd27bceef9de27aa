// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the wallet configuration can be used at startup.
func (cfg *WalletConfig) validate() error {
	if !isHTTPURL(cfg.Keria.URL) || (cfg.Keria.BootURL != "" && !isHTTPURL(cfg.Keria.BootURL)) {
		return ErrInvalidKeriaConfigs
	}
	if cfg.Keria.RequestTimeout <= 0 || cfg.Keria.OobiResolveTimeout <= 0 {
		return ErrInvalidKeriaConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.OperationPollInterval <= 0 || cfg.Workers.SyncInterval <= 0 || cfg.Workers.ReconnectInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	// the version tag is the first segment of a ':'-separated identifier name
	if cfg.App.IdentifierVersion == "" || strings.Contains(cfg.App.IdentifierVersion, ":") {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
