package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/models"
)

type clientRankingService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientRankingService(serverAdapter adapter.ServerAdapter) ClientRankingService {
	return &clientRankingService{serverAdapter: serverAdapter}
}

func (s *clientRankingService) Rankings(ctx context.Context, mode models.RankingMode) (models.Rankings, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRankingMode, mode)
	}

	rankings, err := s.serverAdapter.Rankings(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("error loading %s rankings: %w", mode, mapAdapterError(err))
	}

	// entries keep server order; metrics missing from the payload become empty
	out := make(models.Rankings, len(models.Metrics))
	for _, m := range models.Metrics {
		entries := rankings[m]
		if entries == nil {
			logger.FromContext(ctx).Debug().Str("mode", string(mode)).Str("metric", string(m)).Msg("metric missing from rankings")
			entries = []models.RankingEntry{}
		}
		out[m] = entries
	}
	return out, nil
}
