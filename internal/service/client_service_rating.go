// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/models"
)

type clientRatingService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientRatingService(serverAdapter adapter.ServerAdapter) ClientRatingService {
	return &clientRatingService{serverAdapter: serverAdapter}
}

func (s *clientRatingService) Submit(ctx context.Context, itemID string, scores models.Scores) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(itemID) == "" {
		return ErrItemIDRequired
	}

	scores = scores.Clamp()
	if err := s.serverAdapter.SubmitRating(ctx, itemID, scores); err != nil {
		log.Err(err).Str("item_id", itemID).Msg("rating submission failed")
		return fmt.Errorf("error submitting rating: %w", mapAdapterError(err))
	}

	log.Debug().Str("item_id", itemID).Int("total", scores.Total()).Msg("rating submitted")
	return nil
}
