package rest

import (
	"context"
	"fmt"
	"net/url"

	"mezcaltasting/internal/domain"
)

type beverageRepository struct {
	c *Client
}

// NewBeverageRepository returns a BeverageRepository backed by the /bebidas
// resource of the backend.
func NewBeverageRepository(c *Client) domain.BeverageRepository {
	return &beverageRepository{c: c}
}

func (r *beverageRepository) List(ctx context.Context) ([]*domain.Beverage, error) {
	var out []*domain.Beverage
	if err := r.c.get(ctx, "/bebidas/findAll", &out); err != nil {
		return nil, fmt.Errorf("list beverages: %w", err)
	}
	if out == nil {
		out = []*domain.Beverage{}
	}
	return out, nil
}

func (r *beverageRepository) GetByID(ctx context.Context, id int) (*domain.Beverage, error) {
	var out domain.Beverage
	if err := r.c.get(ctx, fmt.Sprintf("/bebidas/findOne/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *beverageRepository) Create(ctx context.Context, b *domain.Beverage) (*domain.Beverage, error) {
	var out domain.Beverage
	if err := r.c.post(ctx, "/bebidas/create", b, &out); err != nil {
		return nil, fmt.Errorf("create beverage: %w", err)
	}
	return &out, nil
}

func (r *beverageRepository) Update(ctx context.Context, id int, patch domain.BeveragePatch) (*domain.Beverage, error) {
	var out domain.Beverage
	if err := r.c.patch(ctx, fmt.Sprintf("/bebidas/update/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *beverageRepository) Delete(ctx context.Context, id int) error {
	return r.c.deleteText(ctx, fmt.Sprintf("/bebidas/delete/%d", id))
}

func (r *beverageRepository) ListByCategory(ctx context.Context, categoryName string) ([]*domain.Beverage, error) {
	var out []*domain.Beverage
	path := "/bebidas/byCategoria/" + url.PathEscape(categoryName)
	if err := r.c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("list beverages by category: %w", err)
	}
	if out == nil {
		out = []*domain.Beverage{}
	}
	return out, nil
}

type categoryRepository struct {
	c *Client
}

// NewCategoryRepository returns a CategoryRepository backed by the
// /categoria resource of the backend.
func NewCategoryRepository(c *Client) domain.CategoryRepository {
	return &categoryRepository{c: c}
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	if err := r.c.get(ctx, "/categoria/findAll", &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if out == nil {
		out = []*domain.Category{}
	}
	return out, nil
}
