package domain

import (
	"context"
	"time"
)

// Reservation is a hold ("apartado") a user places against a beverage's
// stock. The backend may return the related beverage and user embedded in
// the bebidasID/usuarioID fields; the repository normalizes both forms so
// BeverageID/UserID always hold plain IDs and Beverage/User the snapshots
// when present.
// swagger:model Reservation
type Reservation struct {
	ID         int       `json:"id"`
	Quantity   int       `json:"cantidad"`
	UserID     int       `json:"usuarioID"`
	BeverageID int       `json:"bebidasID"`
	Beverage   *Beverage `json:"bebida,omitempty"`
	User       *User     `json:"usuario,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// Total is the display total for the reservation. Zero when no beverage
// snapshot is available.
func (r *Reservation) Total() float64 {
	if r.Beverage == nil {
		return 0
	}
	return float64(r.Quantity) * r.Beverage.Price
}

// NewReservation is the create payload for a reservation.
type NewReservation struct {
	Quantity   int `json:"cantidad"`
	UserID     int `json:"usuarioID"`
	BeverageID int `json:"bebidasID"`
}

// ReservationRepository defines backend access for reservations.
type ReservationRepository interface {
	List(ctx context.Context) ([]*Reservation, error)
	ListByUser(ctx context.Context, userID int) ([]*Reservation, error)
	Create(ctx context.Context, res NewReservation) (*Reservation, error)
	Delete(ctx context.Context, id int) error
}

// StoreService defines the store ("tienda") flows: identity verification,
// reservations against live stock, and cancellation with stock restore.
type StoreService interface {
	// ListBeverages returns the current beverage list from the backend.
	ListBeverages(ctx context.Context) ([]*Beverage, error)
	// ListProducts returns the catalog projection of the beverage list.
	ListProducts(ctx context.Context) ([]*Product, error)
	// ListUsers returns all users; each must verify before mutating.
	ListUsers(ctx context.Context) ([]*User, error)
	// VerifyUser compares the entered email (case-insensitive, trimmed)
	// against the user record and issues a verification token on match.
	VerifyUser(ctx context.Context, userID int, email string) (token string, user *User, err error)
	// Reserve creates a reservation, decrements the beverage stock, and
	// returns the reloaded beverage list. staged is the locally staged but
	// unsubmitted quantity already subtracted from the displayed stock.
	Reserve(ctx context.Context, userID, beverageID, quantity, staged int) (*Reservation, []*Beverage, error)
	// CancelReservation deletes a reservation, restores the beverage stock,
	// and returns the reloaded beverage list.
	CancelReservation(ctx context.Context, reservationID, beverageID, quantity int) ([]*Beverage, error)
	// ListUserReservations returns the user's reservations, normalized.
	ListUserReservations(ctx context.Context, userID int) ([]*Reservation, error)
}
