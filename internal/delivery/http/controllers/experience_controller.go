package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"mezcaltasting/internal/delivery/http/helpers"
	"mezcaltasting/internal/domain"
	"mezcaltasting/internal/services"
)

type ExperienceController struct {
	Logger  *slog.Logger
	Service domain.ExperienceService
	Roster  domain.AttendeeRoster
	Users   domain.UserRepository
}

func NewExperienceController(logger *slog.Logger, svc domain.ExperienceService, roster domain.AttendeeRoster, users domain.UserRepository) *ExperienceController {
	return &ExperienceController{
		Logger:  logger,
		Service: svc,
		Roster:  roster,
		Users:   users,
	}
}

// pathID parses the numeric {id} path value, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func (c *ExperienceController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteDomainError(w, err)
}

// List godoc
// @Summary List tasting experiences
// @Tags experiences
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Experience}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /experiences [get]
func (c *ExperienceController) List(w http.ResponseWriter, r *http.Request) {
	experiences, err := c.Service.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, experiences)
}

// Get godoc
// @Summary Get a tasting experience by ID
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Experience}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /experiences/{id} [get]
func (c *ExperienceController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	exp, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, exp)
}

// CreateExperienceRequest is the request body for POST /experiences.
type CreateExperienceRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"fecha"`
	Capacity    int       `json:"capacidad"`
	Cost        float64   `json:"costo"`
	Active      bool      `json:"estado"`
}

// Validate implements helpers.Validator.
func (req *CreateExperienceRequest) Validate() []string {
	var errs []string
	if req.Name == "" {
		errs = append(errs, "name is required")
	}
	if req.Date.IsZero() {
		errs = append(errs, "fecha is required")
	}
	if req.Capacity < 0 {
		errs = append(errs, "capacidad cannot be negative")
	}
	return errs
}

// Create godoc
// @Summary Create a tasting experience
// @Tags experiences
// @Accept json
// @Produce json
// @Param request body controllers.CreateExperienceRequest true "Experience"
// @Success 201 {object} helpers.APIResponse{data=domain.Experience}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /experiences [post]
func (c *ExperienceController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExperienceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	exp, err := c.Service.Create(r.Context(), domain.NewExperience(
		req.Name, req.Description, req.Date, req.Capacity, req.Cost, req.Active,
	))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, exp)
}

// Update godoc
// @Summary Update a tasting experience
// @Description Patches the experience. On a 404 from the backend's primary update path the documented fallback endpoint shapes are attempted in order.
// @Tags experiences
// @Accept json
// @Produce json
// @Param id path int true "Experience ID"
// @Param request body domain.ExperiencePatch true "Fields to update"
// @Success 200 {object} helpers.APIResponse{data=domain.Experience}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /experiences/{id} [patch]
func (c *ExperienceController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch domain.ExperiencePatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	exp, err := c.Service.Update(r.Context(), id, patch)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, exp)
}

// Delete godoc
// @Summary Delete a tasting experience
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /experiences/{id} [delete]
func (c *ExperienceController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]int{"deleted": id})
}

// attendeesResponse bundles the transient roster with the remaining spots.
type attendeesResponse struct {
	Attendees      []*domain.Attendee `json:"attendees"`
	AvailableSpots int                `json:"availableSpots"`
}

// Attendees godoc
// @Summary Transient attendance roster for an experience
// @Description Lists the in-memory attendance requests for the experience along with the remaining spots (capacity minus approved entries). The roster is demo-only and lost on restart.
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /experiences/{id}/attendees [get]
func (c *ExperienceController) Attendees(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	exp, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, attendeesResponse{
		Attendees:      c.Roster.ListByExperience(id),
		AvailableSpots: services.AvailableSpots(exp, c.Roster),
	})
}

// Visitor godoc
// @Summary Registered visitor record for an experience
// @Description Looks up the backend user record linked to the experience via its Idcata relation.
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} helpers.APIResponse{data=domain.User}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /experiences/{id}/visitor [get]
func (c *ExperienceController) Visitor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := c.Users.GetByExperienceID(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
