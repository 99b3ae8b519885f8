package service

import (
	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	ItemService    ClientItemService
	RatingService  ClientRatingService
	RankingService ClientRankingService
	HealthService  ClientHealthService
}

func NewClientServices(tokens store.LocalTokenRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(tokens, serverAdapter, logger),
		ItemService:    NewClientItemService(serverAdapter, logger),
		RatingService:  NewClientRatingService(serverAdapter),
		RankingService: NewClientRankingService(serverAdapter),
		HealthService:  NewClientHealthService(serverAdapter),
	}
}
