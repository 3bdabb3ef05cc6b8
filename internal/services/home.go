package services

import (
	"context"
	"fmt"

	"mezcaltasting/internal/domain"
)

type homeService struct {
	homeRepo domain.HomeInfoRepository
}

// NewHomeService creates a HomeService over the given repository.
func NewHomeService(homeRepo domain.HomeInfoRepository) domain.HomeService {
	return &homeService{homeRepo: homeRepo}
}

func (s *homeService) Info(ctx context.Context) ([]*domain.HomeInfo, error) {
	info, err := s.homeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list home info: %w", err)
	}
	return info, nil
}

func (s *homeService) Update(ctx context.Context, id int, patch domain.HomeInfoPatch) (*domain.HomeInfo, error) {
	return s.homeRepo.Update(ctx, id, patch)
}
