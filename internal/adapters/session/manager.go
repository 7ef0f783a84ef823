package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// Manager ties tokens to the live-session registry and publishes changes.
type Manager struct {
	tokens   *Tokens
	registry *Registry
	events   *Events
	ttl      time.Duration
}

func NewManager(t *Tokens, r *Registry, ev *Events, ttl time.Duration) *Manager {
	if ev == nil {
		ev = &Events{}
	}
	return &Manager{tokens: t, registry: r, events: ev, ttl: ttl}
}

func (m *Manager) Events() *Events { return m.events }

// SignIn opens a session for an already authenticated user and returns its bearer token.
func (m *Manager) SignIn(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("user id is required")
	}
	token, claims, err := m.tokens.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if err := m.registry.Put(ctx, claims.ID, userID, m.ttl); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}
	observability.ObserveSession(string(SignedIn))
	m.events.Publish(Event{Kind: SignedIn, UserID: userID})
	return token, nil
}

// Resolve maps a bearer token to its session. Malformed, expired and revoked
// tokens all yield ok=false; only registry failures are errors.
func (m *Manager) Resolve(ctx context.Context, token string) (domain.Session, bool, error) {
	if token == "" {
		return domain.Session{}, false, nil
	}
	claims, err := m.tokens.Parse(token)
	if err != nil {
		return domain.Session{}, false, nil
	}
	userID, ok, err := m.registry.Lookup(ctx, claims.ID)
	if err != nil {
		return domain.Session{}, false, err
	}
	if !ok || userID != claims.UserID {
		return domain.Session{}, false, nil
	}
	return domain.Session{UserID: userID}, true, nil
}

// SignOut revokes the token's session. Signing out an unknown session is not an error.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	claims, err := m.tokens.Parse(token)
	if err != nil {
		return nil
	}
	live, err := m.registry.Revoke(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if live {
		observability.ObserveSession(string(SignedOut))
		m.events.Publish(Event{Kind: SignedOut, UserID: claims.UserID})
		log.Debug().Str("user_id", claims.UserID).Msg("session revoked")
	}
	return nil
}

// BearerSource resolves one request's bearer token each time it is asked,
// so a session revoked mid-flow is noticed at submission time.
type BearerSource struct {
	m     *Manager
	token string
}

func (m *Manager) Source(token string) *BearerSource {
	return &BearerSource{m: m, token: token}
}

func (s *BearerSource) Current(ctx context.Context) (domain.Session, bool, error) {
	return s.m.Resolve(ctx, s.token)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
