package app_test

import (
	"context"
	"errors"
	"testing"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

type fakeProfiles struct {
	rows map[string]domain.Profile
	err  error
}

func (f *fakeProfiles) GetProfile(ctx context.Context, userID string) (domain.Profile, bool, error) {
	if f.err != nil {
		return domain.Profile{}, false, f.err
	}
	p, ok := f.rows[userID]
	return p, ok, nil
}

func TestProfileService_Get(t *testing.T) {
	name := "Ada"
	s := app.NewProfileService(&fakeProfiles{rows: map[string]domain.Profile{
		"u1": {UserID: "u1", FullName: &name},
	}})

	p, ok, err := s.Get(context.Background(), "u1")
	if err != nil || !ok {
		t.Fatalf("want profile, got ok=%v err=%v", ok, err)
	}
	if *p.FullName != "Ada" {
		t.Fatalf("unexpected name %q", *p.FullName)
	}

	_, ok, err = s.Get(context.Background(), "u2")
	if err != nil || ok {
		t.Fatalf("missing row: want ok=false and no error, got ok=%v err=%v", ok, err)
	}
}

func TestProfileService_StoreDown(t *testing.T) {
	boom := errors.New("connection refused")
	s := app.NewProfileService(&fakeProfiles{err: boom})
	_, _, err := s.Get(context.Background(), "u1")
	if !errors.Is(err, domain.ErrStoreUnavailable) || !errors.Is(err, boom) {
		t.Fatalf("want store-unavailable wrapping cause, got %v", err)
	}
}
