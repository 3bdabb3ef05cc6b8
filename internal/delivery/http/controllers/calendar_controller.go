package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"mezcaltasting/internal/delivery/http/helpers"
	"mezcaltasting/internal/domain"
)

type CalendarController struct {
	Logger  *slog.Logger
	Service domain.CalendarService
}

func NewCalendarController(logger *slog.Logger, svc domain.CalendarService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
	}
}

// Month godoc
// @Summary Month view of tasting experiences
// @Description Returns the fixed 42-cell grid for the requested month, with each current-month cell annotated with the active experiences falling on that day. Defaults to the current month.
// @Tags calendar
// @Produce json
// @Param year query int false "Year (e.g. 2023)"
// @Param month query int false "Month 1-12"
// @Success 200 {object} helpers.APIResponse{data=domain.CalendarMonth}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [get]
func (c *CalendarController) Month(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if s := r.URL.Query().Get("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid year")
			return
		}
		year = v
	}
	if s := r.URL.Query().Get("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid month")
			return
		}
		month = time.Month(v)
	}

	grid, err := c.Service.Month(r.Context(), year, month)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, grid)
}
