package domain

import "context"

// Category is a beverage category.
// swagger:model Category
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

// Beverage represents a store product with live stock. JSON tags follow the
// backend DTO field names.
// swagger:model Beverage
type Beverage struct {
	ID          int       `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Price       float64   `json:"precio"`
	Stock       int       `json:"stock"`
	Image       string    `json:"imagen"`
	Category    *Category `json:"categoria,omitempty"`
}

// BeveragePatch carries the mutable fields of a beverage update.
type BeveragePatch struct {
	Name        *string  `json:"nombre,omitempty"`
	Description *string  `json:"descripcion,omitempty"`
	Price       *float64 `json:"precio,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Image       *string  `json:"imagen,omitempty"`
}

// Product is the catalog projection of a beverage, with the display defaults
// the catalog view fills in for missing fields.
// swagger:model Product
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"nombre"`
	Price       float64 `json:"precio"`
	Description string  `json:"descripcion"`
	Volume      string  `json:"volumen"`
	Origin      string  `json:"origen"`
	Image       string  `json:"imagen"`
	Rating      float64 `json:"rating"`
}

// BeverageRepository defines backend access for beverages.
type BeverageRepository interface {
	List(ctx context.Context) ([]*Beverage, error)
	GetByID(ctx context.Context, id int) (*Beverage, error)
	Create(ctx context.Context, b *Beverage) (*Beverage, error)
	Update(ctx context.Context, id int, patch BeveragePatch) (*Beverage, error)
	Delete(ctx context.Context, id int) error
	ListByCategory(ctx context.Context, categoryName string) ([]*Beverage, error)
}

// CategoryRepository defines backend access for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
}
