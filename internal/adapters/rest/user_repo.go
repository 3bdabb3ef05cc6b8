package rest

import (
	"context"
	"fmt"

	"mezcaltasting/internal/domain"
)

type userRepository struct {
	c *Client
}

// NewUserRepository returns a UserRepository backed by the /usuario resource
// of the backend.
func NewUserRepository(c *Client) domain.UserRepository {
	return &userRepository{c: c}
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	var out []*domain.User
	if err := r.c.get(ctx, "/usuario", &out); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if out == nil {
		out = []*domain.User{}
	}
	return out, nil
}

func (r *userRepository) GetByExperienceID(ctx context.Context, experienceID int) (*domain.User, error) {
	var out domain.User
	if err := r.c.get(ctx, fmt.Sprintf("/usuario/visita/%d", experienceID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var out domain.User
	if err := r.c.post(ctx, "/usuario", user, &out); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &out, nil
}

func (r *userRepository) Update(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	var out domain.User
	if err := r.c.patch(ctx, fmt.Sprintf("/usuario/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
