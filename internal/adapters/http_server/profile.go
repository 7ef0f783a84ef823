package httpserver

import (
	"fmt"
	"net/http"

	"hotel_booking/internal/adapters/session"
	"hotel_booking/internal/domain"
)

type profileResponse struct {
	UserID  string          `json:"user_id"`
	Profile *domain.Profile `json:"profile"`
}

// currentUser resolves the request's bearer token to a signed-in user id.
func (h *Handlers) currentUser(r *http.Request) (string, error) {
	sess, ok, err := h.Sessions.Resolve(r.Context(), session.BearerToken(r.Header.Get("Authorization")))
	if err != nil {
		return "", fmt.Errorf("resolve session: %w: %w", domain.ErrSessionUnavailable, err)
	}
	if !ok {
		return "", domain.ErrAuthenticationRequired
	}
	return sess.UserID, nil
}

// getProfile answers with profile=null for a user who never saved one.
func (h *Handlers) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUser(r)
	if err != nil {
		if !stale(r) {
			writeError(w, err)
		}
		return
	}
	p, ok, err := h.Profiles.Get(r.Context(), userID)
	if stale(r) {
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	out := profileResponse{UserID: userID}
	if ok {
		out.Profile = &p
	}
	writeJSON(w, http.StatusOK, out)
}
