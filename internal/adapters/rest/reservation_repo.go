package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mezcaltasting/internal/domain"
)

type reservationRepository struct {
	c *Client
}

// NewReservationRepository returns a ReservationRepository backed by the
// /apartados resource of the backend.
func NewReservationRepository(c *Client) domain.ReservationRepository {
	return &reservationRepository{c: c}
}

// rawReservation is the wire form of an apartado. The backend returns the
// related records embedded in usuarioID/bebidasID when the relation is
// expanded, and plain numeric IDs otherwise.
type rawReservation struct {
	ID         int             `json:"id"`
	Quantity   int             `json:"cantidad"`
	UserID     json.RawMessage `json:"usuarioID"`
	BeverageID json.RawMessage `json:"bebidasID"`
	CreatedAt  *time.Time      `json:"createdAt"`
}

func (raw *rawReservation) normalize() (*domain.Reservation, error) {
	res := &domain.Reservation{
		ID:       raw.ID,
		Quantity: raw.Quantity,
	}
	if raw.CreatedAt != nil {
		res.CreatedAt = *raw.CreatedAt
	}

	if len(raw.BeverageID) > 0 {
		var id int
		if err := json.Unmarshal(raw.BeverageID, &id); err == nil {
			res.BeverageID = id
		} else {
			var b domain.Beverage
			if err := json.Unmarshal(raw.BeverageID, &b); err != nil {
				return nil, fmt.Errorf("reservation %d: unexpected bebidasID shape: %w", raw.ID, err)
			}
			res.Beverage = &b
			res.BeverageID = b.ID
		}
	}

	if len(raw.UserID) > 0 {
		var id int
		if err := json.Unmarshal(raw.UserID, &id); err == nil {
			res.UserID = id
		} else {
			var u domain.User
			if err := json.Unmarshal(raw.UserID, &u); err != nil {
				return nil, fmt.Errorf("reservation %d: unexpected usuarioID shape: %w", raw.ID, err)
			}
			res.User = &u
			res.UserID = u.ID
		}
	}

	return res, nil
}

func normalizeAll(raws []rawReservation) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0, len(raws))
	for i := range raws {
		res, err := raws[i].normalize()
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *reservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	var raws []rawReservation
	if err := r.c.get(ctx, "/apartados", &raws); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return normalizeAll(raws)
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Reservation, error) {
	var raws []rawReservation
	if err := r.c.get(ctx, fmt.Sprintf("/apartados/usuario/%d", userID), &raws); err != nil {
		return nil, fmt.Errorf("list user reservations: %w", err)
	}
	return normalizeAll(raws)
}

func (r *reservationRepository) Create(ctx context.Context, res domain.NewReservation) (*domain.Reservation, error) {
	var raw rawReservation
	if err := r.c.post(ctx, "/apartados", res, &raw); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	return raw.normalize()
}

func (r *reservationRepository) Delete(ctx context.Context, id int) error {
	return r.c.deleteText(ctx, fmt.Sprintf("/apartados/remove/%d", id))
}
