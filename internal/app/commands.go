package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

// ErrSkipped marks a property the content API does not serve; the ingestor
// logs it and moves on.
var ErrSkipped = errors.New("property skipped")

// IngestionService seeds the booking store's catalog from the content API.
type IngestionService struct {
	content domain.ContentClient
	catalog domain.CatalogWriter
}

func NewIngestionService(c domain.ContentClient, w domain.CatalogWriter) *IngestionService {
	return &IngestionService{content: c, catalog: w}
}

// IngestHotel fetches one property and upserts it together with its rooms.
func (s *IngestionService) IngestHotel(ctx context.Context, id int64) error {
	h, rooms, err := s.content.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("property %d: %w", id, ErrSkipped)
		}
		return err
	}
	if h.Name == "" {
		return fmt.Errorf("property %d has no name: %w", id, ErrSkipped)
	}

	// Parent upsert first to satisfy the rooms FK.
	if err := s.catalog.UpsertHotel(ctx, h); err != nil {
		return fmt.Errorf("upsert hotel %s: %w", h.ID, err)
	}
	if err := s.catalog.UpsertRooms(ctx, h.ID, rooms); err != nil {
		return fmt.Errorf("upsert rooms for %s: %w", h.ID, err)
	}
	log.Debug().Str("hotel_id", h.ID).Int("rooms", len(rooms)).Msg("hotel ingested")
	return nil
}
