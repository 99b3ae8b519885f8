// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/models"
)

type localTokenRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewLocalTokenRepository returns the sqlite-backed [LocalTokenRepository].
func NewLocalTokenRepository(db *DB, logger *logger.Logger) LocalTokenRepository {
	return &localTokenRepository{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (l *localTokenRepository) GetToken(ctx context.Context, profileID int) (string, error) {
	log := logger.FromContextOr(ctx, l.logger)

	profile, ok := models.LookupProfile(profileID)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownProfile, profileID)
	}

	query, args, err := buildGetTokenQuery(profile.TokenKey())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localTokenRepository.GetToken").
			Int("profile_id", profileID).
			Msg("failed to read cached token")
		return "", fmt.Errorf("failed to get token (profile=%d): %w", profileID, err)
	}

	if strings.TrimSpace(token) == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (l *localTokenRepository) SaveToken(ctx context.Context, profileID int, token string) error {
	log := logger.FromContextOr(ctx, l.logger)

	profile, ok := models.LookupProfile(profileID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownProfile, profileID)
	}
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	query, args, err := buildSaveTokenQuery(profile.TokenKey(), token, l.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localTokenRepository.SaveToken").
			Int("profile_id", profileID).
			Msg("failed to upsert cached token")
		return fmt.Errorf("failed to save token (profile=%d): %w", profileID, err)
	}

	log.Debug().
		Str("func", "localTokenRepository.SaveToken").
		Int("profile_id", profileID).
		Msg("token cached")
	return nil
}
