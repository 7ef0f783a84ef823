package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hotel_booking/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valJSON(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func parseJSONList(b []byte) ([]string, error) {
	out := []string{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// Repo is the MySQL booking store.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		h.Name,
		h.Description,
		h.Address,
		h.City,
		h.Country,
		h.ImageURL,
		h.Rating,
		valJSON(h.Amenities),
	)
	return err
}

func (r *Repo) UpsertRooms(ctx context.Context, hotelID string, rooms []domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	values := make([]string, 0, len(rooms))
	args := make([]any, 0, len(rooms)*10) // 10 params per row
	for _, rm := range rooms {
		values = append(values, "(?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			rm.ID,
			hotelID,
			rm.Name,
			rm.Description,
			rm.Type,
			rm.Capacity,
			rm.PricePerNight,
			rm.ImageURL,
			valJSON(rm.Amenities),
			rm.Available,
		)
	}
	_, err := r.db.ExecContext(ctx, upsertRoomsPrefix+strings.Join(values, ",")+upsertRoomsOnDup, args...)
	return err
}

// InsertBooking writes one booking; the id and creation time are assigned here.
func (r *Repo) InsertBooking(ctx context.Context, nb domain.NewBooking) (domain.Booking, error) {
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertBookingSQL,
		id,
		nb.UserID,
		nb.HotelID,
		nb.RoomID,
		nb.CheckIn,
		nb.CheckOut,
		nb.Guests,
		nb.TotalPrice,
		valStr(nb.SpecialRequests),
		string(nb.Status),
	); err != nil {
		return domain.Booking{}, err
	}

	b := domain.Booking{
		ID:              id,
		UserID:          nb.UserID,
		HotelID:         nb.HotelID,
		RoomID:          nb.RoomID,
		CheckIn:         nb.CheckIn,
		CheckOut:        nb.CheckOut,
		Guests:          nb.Guests,
		TotalPrice:      nb.TotalPrice,
		SpecialRequests: nb.SpecialRequests,
		Status:          nb.Status,
	}
	if err := r.db.QueryRowContext(ctx, getBookingCreatedAtSQL, id).Scan(&b.CreatedAt); err != nil {
		return domain.Booking{}, fmt.Errorf("read back booking %s: %w", id, err)
	}
	return b, nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		var h domain.Hotel
		var amenities []byte
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Address, &h.City, &h.Country,
			&h.ImageURL, &h.Rating, &amenities); err != nil {
			return nil, err
		}
		if h.Amenities, err = parseJSONList(amenities); err != nil {
			return nil, fmt.Errorf("decode amenities of hotel %s: %w", h.ID, err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Room{}
	for rows.Next() {
		var rm domain.Room
		var amenities []byte
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.Name, &rm.Description, &rm.Type,
			&rm.Capacity, &rm.PricePerNight, &rm.ImageURL, &amenities, &rm.Available); err != nil {
			return nil, err
		}
		if rm.Amenities, err = parseJSONList(amenities); err != nil {
			return nil, fmt.Errorf("decode amenities of room %s: %w", rm.ID, err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListBookings(ctx context.Context, userID string) ([]domain.BookingDetails, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.BookingDetails{}
	for rows.Next() {
		var d domain.BookingDetails
		var special sql.NullString
		var status string
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.HotelID, &d.RoomID,
			&d.CheckIn, &d.CheckOut, &d.Guests, &d.TotalPrice,
			&special, &status, &d.CreatedAt,
			&d.Hotel.Name, &d.Hotel.Address, &d.Hotel.City, &d.Hotel.Country, &d.Hotel.ImageURL,
			&d.Room.Name, &d.Room.Type, &d.Room.ImageURL,
		); err != nil {
			return nil, err
		}
		d.SpecialRequests = strPtr(special)
		d.Status = domain.BookingStatus(status)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProfile reads a user's profile. A missing row is reported as ok=false.
func (r *Repo) GetProfile(ctx context.Context, userID string) (domain.Profile, bool, error) {
	p := domain.Profile{UserID: userID}
	var fullName, phone, avatar sql.NullString
	err := r.db.QueryRowContext(ctx, getProfileSQL, userID).Scan(&fullName, &phone, &avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, err
	}
	p.FullName, p.Phone, p.AvatarURL = strPtr(fullName), strPtr(phone), strPtr(avatar)
	return p, true, nil
}
