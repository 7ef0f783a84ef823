package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"hotel_booking/internal/adapters/session"
)

type signInRequest struct {
	UserID string `json:"user_id"`
}

type signInResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	UserID    string `json:"user_id"`
}

// signIn trusts the posted user id. It is only mounted in dev.
func (h *Handlers) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Fields", "user_id is required")
		return
	}
	token, err := h.Sessions.SignIn(r.Context(), req.UserID)
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Session Unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, signInResponse{Token: token, TokenType: "Bearer", UserID: req.UserID})
}

func (h *Handlers) signOut(w http.ResponseWriter, r *http.Request) {
	token := session.BearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeProblem(w, http.StatusUnauthorized, "Authentication Required", "bearer token missing")
		return
	}
	if err := h.Sessions.SignOut(r.Context(), token); err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Session Unavailable", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
