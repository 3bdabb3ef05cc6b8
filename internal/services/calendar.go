package services

import (
	"context"
	"fmt"
	"time"

	"mezcaltasting/internal/domain"
)

// sameDate reports whether two instants fall on the same calendar date.
// Time-of-day is ignored.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BuildMonth builds the fixed 42-cell grid (6 weeks of 7 days) for the month
// containing reference. Cells from adjacent months are marked OtherMonth and
// never carry experiences. A current-month cell lists the active experiences
// whose date falls on that day, in the order the backend returned them.
func BuildMonth(reference time.Time, experiences []*domain.Experience) []domain.CalendarDay {
	year, month, _ := reference.Date()
	loc := reference.Location()

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// Day zero of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	firstWeekday := int(firstDay.Weekday()) // 0=Sunday .. 6=Saturday

	days := make([]domain.CalendarDay, 0, domain.CalendarGridSize)

	// Trailing days of the previous month, oldest first.
	daysInPrev := time.Date(year, month, 0, 0, 0, 0, 0, loc).Day()
	for i := firstWeekday - 1; i >= 0; i-- {
		num := daysInPrev - i
		days = append(days, domain.CalendarDay{
			Number:      num,
			Date:        time.Date(year, month-1, num, 0, 0, 0, 0, loc),
			Experiences: []*domain.Experience{},
			OtherMonth:  true,
		})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		matches := []*domain.Experience{}
		for _, exp := range experiences {
			if exp.Active && sameDate(exp.Date, date) {
				matches = append(matches, exp)
			}
		}
		days = append(days, domain.CalendarDay{
			Number:        day,
			Date:          date,
			HasExperience: len(matches) > 0,
			Experiences:   matches,
			OtherMonth:    false,
		})
	}

	// Leading days of the next month pad the grid to 42 cells.
	for day := 1; len(days) < domain.CalendarGridSize; day++ {
		days = append(days, domain.CalendarDay{
			Number:      day,
			Date:        time.Date(year, month+1, day, 0, 0, 0, 0, loc),
			Experiences: []*domain.Experience{},
			OtherMonth:  true,
		})
	}

	return days
}

// SelectDay returns the experience surfaced when the given cell is selected.
// Selection is only permitted on current-month cells that carry at least one
// experience; the first experience in list order wins (backend order, not a
// guaranteed earliest pick).
func SelectDay(day domain.CalendarDay) (*domain.Experience, bool) {
	if day.OtherMonth || !day.HasExperience || len(day.Experiences) == 0 {
		return nil, false
	}
	return day.Experiences[0], true
}

type calendarService struct {
	experienceRepo domain.ExperienceRepository
}

// NewCalendarService creates a CalendarService over the given experience repository.
func NewCalendarService(experienceRepo domain.ExperienceRepository) domain.CalendarService {
	return &calendarService{experienceRepo: experienceRepo}
}

func (s *calendarService) Month(ctx context.Context, year int, month time.Month) (*domain.CalendarMonth, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", domain.ErrInvalidInput)
	}
	experiences, err := s.experienceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	reference := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &domain.CalendarMonth{
		Year:  year,
		Month: month,
		Days:  BuildMonth(reference, experiences),
	}, nil
}
