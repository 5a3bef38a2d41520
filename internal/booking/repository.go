package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrSpecialtyNotFound   = errors.New("specialty not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// HospitalRepository covers the immutable hospital reference data.
type HospitalRepository interface {
	List(ctx context.Context) ([]Hospital, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error)
	Create(ctx context.Context, h *Hospital) error
}

type SpecialtyRepository interface {
	List(ctx context.Context) ([]Specialty, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Specialty, error)
	Create(ctx context.Context, s *Specialty) error
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
}

// AppointmentRepository is ownership-scoped: every read and mutation is
// restricted to the appointments created by ownerID. Not-owned rows are
// indistinguishable from absent ones.
type AppointmentRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Appointment, error)
	GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*Appointment, error)
	Create(ctx context.Context, a *Appointment) error
	UpdateForOwner(ctx context.Context, id, ownerID uuid.UUID, changes AppointmentChanges) (*Appointment, error)
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
