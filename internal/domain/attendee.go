package domain

import (
	"context"
	"time"
)

// AttendeeStatus is the review status of an attendance request.
type AttendeeStatus string

// Attendee review statuses, as the roster view labels them.
const (
	AttendeePending  AttendeeStatus = "pendiente"
	AttendeeApproved AttendeeStatus = "aprobada"
	AttendeeRejected AttendeeStatus = "rechazada"
)

// Attendee is a roster entry for a tasting, distinct from a store User.
// Attendees live only in process memory; they are never sent to the backend.
// swagger:model Attendee
type Attendee struct {
	ID           int64          `json:"id"`
	Name         string         `json:"nombre"`
	Email        string         `json:"correo"`
	Status       AttendeeStatus `json:"estado"`
	RequestedAt  time.Time      `json:"fechaSolicitud"`
	ExperienceID int            `json:"experienciaId"`
	Age          int            `json:"edad,omitempty"`
}

// AttendeeRoster keeps the transient attendance list per experience.
type AttendeeRoster interface {
	Add(a *Attendee)
	ListByExperience(experienceID int) []*Attendee
	ApprovedCount(experienceID int) int
}

// RegistrationForm is the attendance request form. Validation happens
// locally, before any backend call.
type RegistrationForm struct {
	Name         string `json:"nome"`
	Email        string `json:"email"`
	Phone        string `json:"telefono"`
	Gender       string `json:"genero"`
	ExperienceID int    `json:"Idcata"`
}

// RegistrationService runs the registration flow: validate, create the user
// record, then decrement the tasting capacity as a dependent second call.
type RegistrationService interface {
	Register(ctx context.Context, form RegistrationForm) (*User, error)
}
