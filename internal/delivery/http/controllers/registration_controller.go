package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"mezcaltasting/internal/delivery/http/helpers"
	"mezcaltasting/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// registrationResponse is the success payload: the created registration plus
// a partial-failure note when the capacity patch did not land.
type registrationResponse struct {
	User    *domain.User `json:"usuario"`
	Warning string       `json:"warning,omitempty"`
}

// Register godoc
// @Summary Register for a tasting experience
// @Description Validates the form locally, rejects full or inactive tastings before any mutation, creates the user record, then decrements the tasting capacity as a dependent second call. When the capacity patch fails after a successful create, the response is 201 with a warning rather than an error: the registration exists and is not rolled back.
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body domain.RegistrationForm true "Registration form"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (no spots, or tasting inactive)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var form domain.RegistrationForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}

	user, err := c.Service.Register(r.Context(), form)

	var partial *domain.PartialFailure
	if errors.As(err, &partial) && user != nil {
		// First step landed; surface the gap alongside the created record.
		c.Logger.WarnContext(r.Context(), "registration partial failure", "user_id", user.ID, "err", err)
		helpers.WriteJSONSuccess(w, http.StatusCreated, registrationResponse{
			User:    user,
			Warning: partial.Error(),
		})
		return
	}
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidInput) &&
			!errors.Is(err, domain.ErrNoCapacity) &&
			!errors.Is(err, domain.ErrExperienceInactive) &&
			!errors.Is(err, domain.ErrNotFound) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteDomainError(w, err)
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, registrationResponse{User: user})
}
