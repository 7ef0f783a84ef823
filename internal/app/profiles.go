package app

import (
	"context"
	"fmt"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

type ProfileService struct {
	store domain.ProfileStore
}

func NewProfileService(s domain.ProfileStore) *ProfileService {
	return &ProfileService{store: s}
}

// Get returns the user's profile, or ok=false when they never saved one.
func (s *ProfileService) Get(ctx context.Context, userID string) (domain.Profile, bool, error) {
	p, ok, err := s.store.GetProfile(ctx, userID)
	observability.ObserveStore("get_profile", err)
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("get profile of %s: %w: %w", userID, domain.ErrStoreUnavailable, err)
	}
	return p, ok, nil
}
