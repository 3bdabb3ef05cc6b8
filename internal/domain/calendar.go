package domain

import (
	"context"
	"time"
)

// CalendarGridSize is the fixed number of cells in a month view: 6 weeks of 7 days.
const CalendarGridSize = 42

// CalendarDay is one cell of the month grid. It is a generated value object:
// recomputed whenever the reference month or the experience list changes,
// never mutated in place. JSON tags keep the original view-model field names.
// swagger:model CalendarDay
type CalendarDay struct {
	Number        int           `json:"numero"`
	Date          time.Time     `json:"fecha"`
	HasExperience bool          `json:"tieneExperiencia"`
	Experiences   []*Experience `json:"experiencias"`
	OtherMonth    bool          `json:"esOtroMes"`
}

// CalendarMonth is a built month view: the reference month plus its 42 cells.
// swagger:model CalendarMonth
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// CalendarService builds month views from the current experience list.
type CalendarService interface {
	Month(ctx context.Context, year int, month time.Month) (*CalendarMonth, error)
}
