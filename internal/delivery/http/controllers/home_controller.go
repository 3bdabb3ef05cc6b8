package controllers

import (
	"log/slog"
	"net/http"

	"mezcaltasting/internal/delivery/http/helpers"
	"mezcaltasting/internal/domain"
)

type HomeController struct {
	Logger  *slog.Logger
	Service domain.HomeService
}

func NewHomeController(logger *slog.Logger, svc domain.HomeService) *HomeController {
	return &HomeController{
		Logger:  logger,
		Service: svc,
	}
}

// Info godoc
// @Summary Landing-page content
// @Description Returns the editable landing-page record: history, vision, mission, values, production norms, mezcal master, contact number and location.
// @Tags home
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.HomeInfo}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /home [get]
func (c *HomeController) Info(w http.ResponseWriter, r *http.Request) {
	info, err := c.Service.Info(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, info)
}

// Update godoc
// @Summary Update landing-page content
// @Tags home
// @Accept json
// @Produce json
// @Param id path int true "Home info record ID"
// @Param request body domain.HomeInfoPatch true "Fields to update"
// @Success 200 {object} helpers.APIResponse{data=domain.HomeInfo}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /home/{id} [patch]
func (c *HomeController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var patch domain.HomeInfoPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	info, err := c.Service.Update(r.Context(), id, patch)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, info)
}
