package rest

import (
	"context"
	"fmt"
	"net/http"

	"mezcaltasting/internal/domain"
)

type experienceRepository struct {
	c *Client
}

// NewExperienceRepository returns an ExperienceRepository backed by the
// /diaCata resource of the backend.
func NewExperienceRepository(c *Client) domain.ExperienceRepository {
	return &experienceRepository{c: c}
}

func (r *experienceRepository) List(ctx context.Context) ([]*domain.Experience, error) {
	var out []*domain.Experience
	if err := r.c.get(ctx, "/diaCata/findAll", &out); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	if out == nil {
		out = []*domain.Experience{}
	}
	return out, nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id int) (*domain.Experience, error) {
	var out domain.Experience
	if err := r.c.get(ctx, fmt.Sprintf("/diaCata/findOne/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *experienceRepository) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	var out domain.Experience
	if err := r.c.post(ctx, "/diaCata/create", exp, &out); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return &out, nil
}

// experiencePatchWithID is the body of the last update fallback shape, which
// carries the id inside the payload instead of the path.
type experiencePatchWithID struct {
	ID int `json:"id"`
	domain.ExperiencePatch
}

func (r *experienceRepository) Update(ctx context.Context, id int, patch domain.ExperiencePatch) (*domain.Experience, error) {
	var out domain.Experience
	err := r.c.tryInOrder(ctx, &out, false,
		candidate{method: http.MethodPatch, path: fmt.Sprintf("/diaCata/update/%d", id), body: patch},
		candidate{method: http.MethodPatch, path: fmt.Sprintf("/diaCata/%d", id), body: patch},
		candidate{method: http.MethodPatch, path: "/diaCata/update", body: experiencePatchWithID{ID: id, ExperiencePatch: patch}},
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *experienceRepository) Delete(ctx context.Context, id int) error {
	// Delete endpoints answer plain text rather than JSON.
	return r.c.tryInOrder(ctx, nil, true,
		candidate{method: http.MethodDelete, path: fmt.Sprintf("/diaCata/delete/%d", id)},
		candidate{method: http.MethodDelete, path: fmt.Sprintf("/diaCata/remove/%d", id)},
		candidate{method: http.MethodDelete, path: fmt.Sprintf("/diaCata/%d", id)},
	)
}
