// Package content fetches hotel and room listings from the upstream content API.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hotel_booking/internal/domain"
)

var (
	ErrNotFound     = fmt.Errorf("content: %w", domain.ErrNotFound)
	ErrUnauthorized = errors.New("content: unauthorized")
	ErrForbidden    = errors.New("content: forbidden")
)

type Client struct {
	base string
	key  string
	hc   *http.Client
}

// New builds a client allowing rps requests per second, retries included.
func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, errors.New("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc: &http.Client{
			Timeout: 20 * time.Second,
			Transport: &retryTransport{
				next:       http.DefaultTransport,
				limiter:    rate.NewLimiter(rate.Limit(rps), rps),
				maxRetries: 3,
				newBackOff: defaultBackOff,
			},
		},
	}, nil
}

// GetProperty fetches one property and maps it onto a hotel and its rooms.
// A payload without its own id takes the requested one.
func (c *Client) GetProperty(ctx context.Context, id int64) (domain.Hotel, []domain.Room, error) {
	var p Property
	if err := c.getJSON(ctx, fmt.Sprintf("%s/properties/%d", c.base, id), &p); err != nil {
		return domain.Hotel{}, nil, err
	}
	if p.ID == "" {
		p.ID = flexString(strconv.FormatInt(id, 10))
	}
	h, rooms := p.toDomain()
	return h, rooms, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotel-booking-ingestor/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s: %w", url, err)
		}
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
