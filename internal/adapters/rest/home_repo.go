package rest

import (
	"context"
	"fmt"

	"mezcaltasting/internal/domain"
)

type homeInfoRepository struct {
	c *Client
}

// NewHomeInfoRepository returns a HomeInfoRepository backed by the
// /info-home resource of the backend.
func NewHomeInfoRepository(c *Client) domain.HomeInfoRepository {
	return &homeInfoRepository{c: c}
}

func (r *homeInfoRepository) List(ctx context.Context) ([]*domain.HomeInfo, error) {
	var out []*domain.HomeInfo
	if err := r.c.get(ctx, "/info-home/findAll", &out); err != nil {
		return nil, fmt.Errorf("list home info: %w", err)
	}
	if out == nil {
		out = []*domain.HomeInfo{}
	}
	return out, nil
}

func (r *homeInfoRepository) Update(ctx context.Context, id int, patch domain.HomeInfoPatch) (*domain.HomeInfo, error) {
	var out domain.HomeInfo
	if err := r.c.patch(ctx, fmt.Sprintf("/info-home/update/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
