package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/models"
	"golang.org/x/sync/errgroup"
)

type clientItemService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

func NewClientItemService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientItemService {
	return &clientItemService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientItemService) Overview(ctx context.Context) ([]models.Item, models.Summary, error) {
	var (
		items   []models.Item
		entries []models.SummaryEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.serverAdapter.ListItems(gctx)
		if err != nil {
			return fmt.Errorf("error listing items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.serverAdapter.ItemsSummary(gctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("items summary unavailable, showing items without totals")
			entries = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, models.Summary{}, err
	}

	if items == nil {
		items = []models.Item{}
	}
	return items, models.NewSummary(entries), nil
}

func (s *clientItemService) Create(ctx context.Context, code, name string) (models.Item, error) {
	req := models.CreateItemRequest{
		Code: strings.TrimSpace(code),
		Name: strings.TrimSpace(name),
	}
	if req.Code == "" {
		return models.Item{}, ErrItemCodeRequired
	}

	item, err := s.serverAdapter.CreateItem(ctx, req)
	if err != nil {
		return models.Item{}, fmt.Errorf("error creating item: %w", mapAdapterError(err))
	}
	return item, nil
}

func (s *clientItemService) Detail(ctx context.Context, itemID string) (models.ItemDetail, error) {
	if strings.TrimSpace(itemID) == "" {
		return models.ItemDetail{}, ErrItemIDRequired
	}

	detail, err := s.serverAdapter.ItemDetail(ctx, itemID)
	if err != nil {
		return models.ItemDetail{}, fmt.Errorf("error loading item detail: %w", mapAdapterError(err))
	}
	return detail, nil
}

func (s *clientItemService) Delete(ctx context.Context, itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrItemIDRequired
	}

	if err := s.serverAdapter.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("error deleting item: %w", mapAdapterError(err))
	}
	return nil
}
