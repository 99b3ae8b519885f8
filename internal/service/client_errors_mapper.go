// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/app"
)

// mapAdapterError translates API failures with a known detail code into
// service errors. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	detail := adapter.Detail(err)

	switch {
	case errors.Is(err, adapter.ErrRequestFailed):
		if detail == app.DetailCooldownRating5Min {
			return fmt.Errorf("%w: %w", ErrRatingCooldown, err)
		}

	case errors.Is(err, adapter.ErrForbidden):
		if detail == app.DetailAdminOnly {
			return fmt.Errorf("%w: %w", ErrAdminOnly, err)
		}
	}

	return err
}
