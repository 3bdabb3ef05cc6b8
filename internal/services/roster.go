package services

import (
	"sync"
	"time"

	"mezcaltasting/internal/domain"
)

// attendeeRoster keeps the transient attendance list in process memory. It
// is a demo-grade companion to the registration flow; entries are never sent
// to the backend and are lost on restart.
type attendeeRoster struct {
	mu        sync.Mutex
	attendees []*domain.Attendee
	nextID    int64
}

// NewAttendeeRoster creates an empty in-memory roster.
func NewAttendeeRoster() domain.AttendeeRoster {
	return &attendeeRoster{nextID: 1}
}

func (r *attendeeRoster) Add(a *domain.Attendee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	if a.Status == "" {
		a.Status = domain.AttendeePending
	}
	if a.RequestedAt.IsZero() {
		a.RequestedAt = time.Now()
	}
	r.attendees = append(r.attendees, a)
}

func (r *attendeeRoster) ListByExperience(experienceID int) []*domain.Attendee {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Attendee{}
	for _, a := range r.attendees {
		if a.ExperienceID == experienceID {
			out = append(out, a)
		}
	}
	return out
}

func (r *attendeeRoster) ApprovedCount(experienceID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, a := range r.attendees {
		if a.ExperienceID == experienceID && a.Status == domain.AttendeeApproved {
			n++
		}
	}
	return n
}

// AvailableSpots is the capacity of the experience minus its approved
// roster entries, floored at zero.
func AvailableSpots(exp *domain.Experience, roster domain.AttendeeRoster) int {
	if exp == nil || exp.Capacity <= 0 {
		return 0
	}
	spots := exp.Capacity - roster.ApprovedCount(exp.ID)
	if spots < 0 {
		return 0
	}
	return spots
}
