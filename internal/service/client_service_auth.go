package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/internal/store"
	"github.com/MKhiriev/rate-keeper/models"
)

type clientAuthService struct {
	tokens        store.LocalTokenRepository
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

func NewClientAuthService(tokens store.LocalTokenRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		tokens:        tokens,
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientAuthService) VerifyCode(profileID int, code string) error {
	profile, ok := models.LookupProfile(profileID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownProfile, profileID)
	}

	code = strings.TrimSpace(code)
	if subtle.ConstantTimeCompare([]byte(code), []byte(profile.EntryCode)) != 1 {
		return ErrIncorrectCode
	}
	return nil
}

func (s *clientAuthService) CachedSession(ctx context.Context, profileID int) (models.Session, bool, error) {
	token, err := s.tokens.GetToken(ctx, profileID)
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.Session{}, false, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Int("profile", profileID).Msg("cached token unreadable, falling back to exchange")
		return models.Session{}, false, fmt.Errorf("%w: %w", ErrTokenCacheUnreadable, err)
	}

	return models.Session{ProfileID: profileID, Token: token}, true, nil
}

func (s *clientAuthService) Exchange(ctx context.Context, profileID int, code string) (models.Session, error) {
	if err := s.VerifyCode(profileID, code); err != nil {
		return models.Session{}, err
	}

	token, err := s.serverAdapter.ExchangePIN(ctx, profileID, strings.TrimSpace(code))
	if err != nil {
		return models.Session{}, fmt.Errorf("pin exchange failed: %w", mapAdapterError(err))
	}

	return models.Session{ProfileID: profileID, Token: token}, nil
}

func (s *clientAuthService) Remember(ctx context.Context, session models.Session) error {
	if err := s.tokens.SaveToken(ctx, session.ProfileID, session.Token); err != nil {
		return fmt.Errorf("error caching session token: %w", err)
	}
	return nil
}

func (s *clientAuthService) Activate(session models.Session) {
	s.serverAdapter.SetToken(session.Token)
}

func (s *clientAuthService) Deactivate() {
	s.serverAdapter.SetToken("")
}
