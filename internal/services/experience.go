package services

import (
	"context"
	"fmt"
	"strings"

	"mezcaltasting/internal/domain"
)

type experienceService struct {
	experienceRepo domain.ExperienceRepository
}

// NewExperienceService creates an ExperienceService over the given repository.
func NewExperienceService(experienceRepo domain.ExperienceRepository) domain.ExperienceService {
	return &experienceService{experienceRepo: experienceRepo}
}

func (s *experienceService) List(ctx context.Context) ([]*domain.Experience, error) {
	return s.experienceRepo.List(ctx)
}

func (s *experienceService) GetByID(ctx context.Context, id int) (*domain.Experience, error) {
	return s.experienceRepo.GetByID(ctx, id)
}

func (s *experienceService) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	if strings.TrimSpace(exp.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if exp.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity cannot be negative", domain.ErrInvalidInput)
	}
	if exp.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	return s.experienceRepo.Create(ctx, exp)
}

func (s *experienceService) Update(ctx context.Context, id int, patch domain.ExperiencePatch) (*domain.Experience, error) {
	if patch.Capacity != nil && *patch.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity cannot be negative", domain.ErrInvalidInput)
	}
	return s.experienceRepo.Update(ctx, id, patch)
}

func (s *experienceService) Delete(ctx context.Context, id int) error {
	return s.experienceRepo.Delete(ctx, id)
}
