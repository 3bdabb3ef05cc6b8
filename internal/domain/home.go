package domain

import "context"

// HomeInfo is the editable landing-page content block.
// swagger:model HomeInfo
type HomeInfo struct {
	ID               int    `json:"id"`
	History          string `json:"historia"`
	Vision           string `json:"vision"`
	ImageURL         string `json:"imageUrl"`
	MaestroMezcalero string `json:"maestroMezcal"`
	Mission          string `json:"mision"`
	Values           string `json:"valores"`
	ProductionRules  string `json:"normasProduccion"`
	ContactNumber    int64  `json:"numeroContacto"`
	Location         string `json:"ubicacion"`
	CreatedAt        string `json:"createdAt,omitempty"`
}

// HomeInfoPatch carries the mutable fields of a home-info update.
type HomeInfoPatch struct {
	History          *string `json:"historia,omitempty"`
	Vision           *string `json:"vision,omitempty"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	MaestroMezcalero *string `json:"maestroMezcal,omitempty"`
	Mission          *string `json:"mision,omitempty"`
	Values           *string `json:"valores,omitempty"`
	ProductionRules  *string `json:"normasProduccion,omitempty"`
	ContactNumber    *int64  `json:"numeroContacto,omitempty"`
	Location         *string `json:"ubicacion,omitempty"`
}

// HomeInfoRepository defines backend access for home content.
type HomeInfoRepository interface {
	List(ctx context.Context) ([]*HomeInfo, error)
	Update(ctx context.Context, id int, patch HomeInfoPatch) (*HomeInfo, error)
}

// HomeService exposes the landing-page content.
type HomeService interface {
	Info(ctx context.Context) ([]*HomeInfo, error)
	Update(ctx context.Context, id int, patch HomeInfoPatch) (*HomeInfo, error)
}
