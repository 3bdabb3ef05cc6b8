package domain

import (
	"context"
	"time"
)

// Experience represents a scheduled tasting session ("cata") with finite
// capacity. JSON tags follow the backend DTO field names.
// swagger:model Experience
type Experience struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"fecha"`
	Capacity    int       `json:"capacidad"`
	Cost        float64   `json:"costo"`
	Active      bool      `json:"estado"`
}

// NewExperience returns a new Experience. ID is assigned by the backend on create.
func NewExperience(name, description string, date time.Time, capacity int, cost float64, active bool) *Experience {
	return &Experience{
		Name:        name,
		Description: description,
		Date:        date,
		Capacity:    capacity,
		Cost:        cost,
		Active:      active,
	}
}

// ExperiencePatch carries the mutable fields of an experience update.
// Nil fields are left out of the request body.
type ExperiencePatch struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"fecha,omitempty"`
	Capacity    *int       `json:"capacidad,omitempty"`
	Cost        *float64   `json:"costo,omitempty"`
	Active      *bool      `json:"estado,omitempty"`
}

// ExperienceRepository defines backend access for experiences. Update and
// Delete absorb the backend's endpoint-shape fallbacks: a 404 on the primary
// path is retried against the documented alternate shapes before ErrNotFound
// is reported.
type ExperienceRepository interface {
	List(ctx context.Context) ([]*Experience, error)
	GetByID(ctx context.Context, id int) (*Experience, error)
	Create(ctx context.Context, exp *Experience) (*Experience, error)
	Update(ctx context.Context, id int, patch ExperiencePatch) (*Experience, error)
	Delete(ctx context.Context, id int) error
}

// ExperienceService defines admin-facing experience operations.
type ExperienceService interface {
	List(ctx context.Context) ([]*Experience, error)
	GetByID(ctx context.Context, id int) (*Experience, error)
	Create(ctx context.Context, exp *Experience) (*Experience, error)
	Update(ctx context.Context, id int, patch ExperiencePatch) (*Experience, error)
	Delete(ctx context.Context, id int) error
}
