package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_booking/internal/adapters/session"
	"hotel_booking/internal/app"
	"hotel_booking/internal/booking"
	"hotel_booking/internal/domain"
	"hotel_booking/internal/search"
)

type Handlers struct {
	Catalog  *app.CatalogService
	Hotels   *app.HotelList
	Bookings *booking.Service
	Profiles *app.ProfileService
	Sessions *session.Manager
	// DevLogin exposes POST /v1/sessions, which signs in any user id.
	DevLogin bool
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// heldHotelsProblem is the 503 body when a refresh failed but an earlier
// list is still held; the client may show it as possibly outdated.
type heldHotelsProblem struct {
	problem
	Hotels   []domain.Hotel `json:"hotels"`
	LoadedAt time.Time      `json:"loaded_at"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{id}/rooms", h.listRooms)
	s.mux.Post("/v1/bookings/quote", h.quote)
	s.mux.Post("/v1/bookings", h.createBooking)
	s.mux.Get("/v1/bookings", h.listBookings)
	s.mux.Get("/v1/profile", h.getProfile)
	if h.DevLogin {
		s.mux.Post("/v1/sessions", h.signIn)
	}
	s.mux.Delete("/v1/sessions/current", h.signOut)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain and booking errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	var capErr *booking.CapacityError
	var subErr *booking.SubmissionError
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		writeProblem(w, http.StatusBadRequest, "Missing Fields", "please fill in all required fields")
	case errors.Is(err, domain.ErrInvalidDates):
		writeProblem(w, http.StatusBadRequest, "Invalid Dates", "check-out must be after check-in")
	case errors.Is(err, domain.ErrInvalidGuests):
		writeProblem(w, http.StatusBadRequest, "Invalid Guests", "guests must be at least 1")
	case errors.Is(err, domain.ErrAuthenticationRequired):
		writeProblem(w, http.StatusUnauthorized, "Authentication Required", "please sign in first")
	case errors.As(err, &capErr):
		writeProblem(w, http.StatusConflict, "Capacity Exceeded", capErr.Error())
	case errors.As(err, &subErr):
		writeProblem(w, http.StatusBadGateway, "Booking Failed", subErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "please try again")
	case errors.Is(err, domain.ErrSessionUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Session Unavailable", "could not verify your session, please try again")
	default:
		log.Error().Err(err).Msg("unhandled error")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// stale reports whether the caller has gone away; results arriving after
// that are dropped instead of written.
func stale(r *http.Request) bool {
	if err := r.Context().Err(); err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("dropping stale result")
		return true
	}
	return false
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	writeJSONAs(w, "application/json", status, v)
}

func writeJSONAs(w http.ResponseWriter, contentType string, status int, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeCached writes v with a weak ETag, answering 304 when the client has it.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if etag != "" {
		w.Header().Set("ETag", etag)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

// parseFilters reads the search form from the query string. Every field is
// validated, though only destination narrows the list.
func parseFilters(r *http.Request) (search.Filters, error) {
	q := r.URL.Query()
	f := search.DefaultFilters()
	f.Destination = q.Get("destination")

	for _, p := range []struct {
		key string
		dst **domain.Date
	}{{"check_in", &f.CheckIn}, {"check_out", &f.CheckOut}} {
		if v := q.Get(p.key); v != "" {
			d, err := domain.ParseDate(v)
			if err != nil {
				return f, errors.New(p.key + " must be YYYY-MM-DD")
			}
			*p.dst = &d
		}
	}
	if v := q.Get("guests"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, errors.New("guests must be a positive integer")
		}
		f.Guests = n
	}
	pr, err := search.ParsePriceRange(q.Get("price_range"))
	if err != nil {
		return f, err
	}
	f.PriceRange = pr
	return f, nil
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilters(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Filter", err.Error())
		return
	}
	hotels, err := h.Hotels.Refresh(r.Context())
	if stale(r) {
		return
	}
	if err != nil {
		held, at := h.Hotels.Hotels()
		if held == nil || !errors.Is(err, domain.ErrStoreUnavailable) {
			writeError(w, err)
			return
		}
		out := search.Filter(held, f)
		if out == nil {
			out = []domain.Hotel{}
		}
		writeJSONAs(w, "application/problem+json", http.StatusServiceUnavailable, heldHotelsProblem{
			problem: problem{
				Type:   "about:blank",
				Title:  "Store Unavailable",
				Status: http.StatusServiceUnavailable,
				Detail: "showing the last list that loaded",
			},
			Hotels:   out,
			LoadedAt: at.UTC(),
		})
		return
	}
	out := search.Filter(hotels, f)
	if out == nil {
		out = []domain.Hotel{}
	}
	writeCached(w, r, out)
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Catalog.ListRooms(r.Context(), chi.URLParam(r, "id"))
	if stale(r) {
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	writeCached(w, r, rooms)
}
