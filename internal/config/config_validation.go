// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// validate reports every invalid configuration group at once.
func (cfg *ClientConfig) validate() error {
	var errs []error

	// An in-memory database would lose the cached tokens on exit.
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if cfg.App.NoticeTTL <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	return errors.Join(errs...)
}
