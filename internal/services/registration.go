package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"mezcaltasting/internal/domain"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// validateForm checks the registration form locally. A non-empty result
// blocks the flow before any backend call.
func validateForm(form domain.RegistrationForm) []string {
	var errs []string
	if len(strings.TrimSpace(form.Name)) < 2 {
		errs = append(errs, "name must be at least 2 characters")
	}
	if !emailRegex.MatchString(strings.TrimSpace(form.Email)) {
		errs = append(errs, "email is not valid")
	}
	if !phoneRegex.MatchString(strings.TrimSpace(form.Phone)) {
		errs = append(errs, "phone must be exactly 10 digits")
	}
	if strings.TrimSpace(form.Gender) == "" {
		errs = append(errs, "gender is required")
	}
	if form.ExperienceID <= 0 {
		errs = append(errs, "a tasting day must be selected")
	}
	return errs
}

type registrationService struct {
	experienceRepo domain.ExperienceRepository
	userRepo       domain.UserRepository
	roster         domain.AttendeeRoster
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	logger         *slog.Logger
}

// NewRegistrationService creates a RegistrationService. mailer and renderer
// may be nil; the confirmation email is then skipped.
func NewRegistrationService(
	experienceRepo domain.ExperienceRepository,
	userRepo domain.UserRepository,
	roster domain.AttendeeRoster,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		experienceRepo: experienceRepo,
		userRepo:       userRepo,
		roster:         roster,
		mailer:         mailer,
		renderer:       renderer,
		logger:         logger,
	}
}

// Register runs the registration flow: local validation, capacity check,
// create the user record, then patch the tasting capacity as a dependent
// second call. A capacity-patch failure after a successful create is
// reported as a PartialFailure and never rolled back.
func (s *registrationService) Register(ctx context.Context, form domain.RegistrationForm) (*domain.User, error) {
	if errs := validateForm(form); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}

	exp, err := s.experienceRepo.GetByID(ctx, form.ExperienceID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get experience: %w", err)
	}
	if !exp.Active {
		return nil, domain.ErrExperienceInactive
	}
	if exp.Capacity <= 0 {
		return nil, domain.ErrNoCapacity
	}

	// The next capacity is computed here, before any mutation, exactly as
	// the client would display it.
	nextCapacity := exp.Capacity - 1
	if nextCapacity < 0 {
		nextCapacity = 0
	}

	user := &domain.User{
		Name:         strings.TrimSpace(form.Name),
		Email:        strings.TrimSpace(form.Email),
		Phone:        strings.TrimSpace(form.Phone),
		Status:       0,
		Gender:       form.Gender,
		ExperienceID: form.ExperienceID,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.roster.Add(&domain.Attendee{
		Name:         created.Name,
		Email:        created.Email,
		ExperienceID: exp.ID,
	})

	if _, err := s.experienceRepo.Update(ctx, exp.ID, domain.ExperiencePatch{Capacity: &nextCapacity}); err != nil {
		// The registration exists; the gap is reported, not compensated.
		return created, &domain.PartialFailure{
			Done:   "registration created",
			Failed: "capacity not updated",
			Err:    err,
		}
	}

	s.sendConfirmation(created, exp)
	return created, nil
}

// sendConfirmation emails a registration confirmation. Failures are logged
// and never fail the flow.
func (s *registrationService) sendConfirmation(user *domain.User, exp *domain.Experience) {
	if s.mailer == nil || s.renderer == nil || user.Email == "" {
		return
	}
	data := map[string]string{
		"Name":           user.Name,
		"ExperienceName": exp.Name,
		"Date":           exp.Date.Format("2 January 2006"),
	}
	subject, html, text, err := s.renderer.Render("registration_confirmed", data)
	if err != nil {
		s.logger.Warn("render confirmation email failed", "err", err)
		return
	}
	if err := s.mailer.Send(user.Email, subject, html, text); err != nil {
		s.logger.Warn("send confirmation email failed", "to", user.Email, "err", err)
	}
}
