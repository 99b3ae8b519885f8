package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
)

type clientHealthService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientHealthService(serverAdapter adapter.ServerAdapter) ClientHealthService {
	return &clientHealthService{serverAdapter: serverAdapter}
}

func (s *clientHealthService) Ping(ctx context.Context) error {
	if err := s.serverAdapter.Health(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}
