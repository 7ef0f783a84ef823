package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/adapters/session"
	"hotel_booking/internal/booking"
	"hotel_booking/internal/domain"
)

// bookingRequest is the booking form. Dates are YYYY-MM-DD; guests defaults to 1.
type bookingRequest struct {
	HotelID         string  `json:"hotel_id"`
	RoomID          string  `json:"room_id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Guests          *int    `json:"guests"`
	SpecialRequests *string `json:"special_requests"`
}

type quoteResponse struct {
	HotelID string `json:"hotel_id"`
	RoomID  string `json:"room_id"`
	booking.Quote
}

var errBadDate = errors.New("dates must be YYYY-MM-DD")

func decodeBooking(w http.ResponseWriter, r *http.Request) (bookingRequest, error) {
	var req bookingRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	return req, nil
}

// dates parses the optional date pair; a blank value stays zero.
func (req bookingRequest) dates() (in, out domain.Date, err error) {
	if req.CheckIn != "" {
		if in, err = domain.ParseDate(req.CheckIn); err != nil {
			return in, out, errBadDate
		}
	}
	if req.CheckOut != "" {
		if out, err = domain.ParseDate(req.CheckOut); err != nil {
			return in, out, errBadDate
		}
	}
	return in, out, nil
}

// draft resolves the hotel and room and fills a booking draft from the form.
// Blank ids leave the draft incomplete so validation reports missing fields.
func (h *Handlers) draft(r *http.Request, req bookingRequest) (*booking.Draft, error) {
	in, out, err := req.dates()
	if err != nil {
		return nil, err
	}
	d := booking.NewDraft(nil, nil)
	if req.HotelID != "" && req.RoomID != "" {
		hotel, room, err := h.Catalog.FindRoom(r.Context(), req.HotelID, req.RoomID)
		if err != nil {
			return nil, err
		}
		d = booking.NewDraft(&hotel, &room)
	}
	d.SetDates(in, out)
	if req.Guests != nil {
		d.SetGuests(*req.Guests)
	}
	if req.SpecialRequests != nil {
		d.SetSpecialRequests(*req.SpecialRequests)
	}
	return d, nil
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBooking(w, r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if req.HotelID == "" || req.RoomID == "" {
		writeError(w, domain.ErrMissingFields)
		return
	}
	in, out, err := req.dates()
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Dates", err.Error())
		return
	}
	_, room, err := h.Catalog.FindRoom(r.Context(), req.HotelID, req.RoomID)
	if stale(r) {
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{
		HotelID: req.HotelID,
		RoomID:  req.RoomID,
		Quote:   h.Bookings.Quote(room, in, out),
	})
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBooking(w, r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	d, err := h.draft(r, req)
	if stale(r) {
		return
	}
	if errors.Is(err, errBadDate) {
		writeProblem(w, http.StatusBadRequest, "Invalid Dates", err.Error())
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	src := h.Sessions.Source(session.BearerToken(r.Header.Get("Authorization")))
	b, err := h.Bookings.Submit(r.Context(), src, d)
	if stale(r) {
		// The insert may have landed; the client will see it on its next listing.
		if err == nil {
			log.Info().Str("booking_id", b.ID).Msg("booking created after client left")
		}
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	src := h.Sessions.Source(session.BearerToken(r.Header.Get("Authorization")))
	out, err := h.Bookings.ListBookings(r.Context(), src)
	if stale(r) {
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.BookingDetails{}
	}
	writeJSON(w, http.StatusOK, out)
}
