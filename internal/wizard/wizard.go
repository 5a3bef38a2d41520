// Package wizard models the five-step linear booking flow. Each step is gated
// by its own validity predicate; back navigation is unrestricted. The portal's
// web client drives the same flow, so the server keeps this model as the
// reference for what a complete booking submission looks like.
package wizard

import (
	"time"

	"github.com/google/uuid"

	"github.com/agendasaude/booking-portal/internal/booking"
)

type Step int

const (
	StepHospital Step = iota + 1
	StepServiceType
	StepSpecialty
	StepPatient
	StepSchedule

	firstStep = StepHospital
	lastStep  = StepSchedule
)

// Form carries the selections collected across the five steps.
type Form struct {
	step Step
	now  func() time.Time

	HospitalID   uuid.UUID
	ServiceType  string
	SpecialtyID  uuid.UUID
	PatientName  string
	PatientCPF   string
	PatientBirth string
	PatientPhone string
	Date         time.Time
	Time         string
}

func New() *Form {
	return &Form{step: firstStep, now: time.Now}
}

func (f *Form) Step() Step {
	return f.step
}

// StepValid reports whether the current step's predicate holds.
func (f *Form) StepValid() bool {
	switch f.step {
	case StepHospital:
		return f.HospitalID != uuid.Nil
	case StepServiceType:
		return f.ServiceType != ""
	case StepSpecialty:
		return f.SpecialtyID != uuid.Nil
	case StepPatient:
		return f.PatientName != "" && f.PatientCPF != "" &&
			f.PatientBirth != "" && f.PatientPhone != ""
	case StepSchedule:
		return !f.Date.IsZero() && !f.dateInPast() && booking.IsTimeSlot(f.Time)
	}
	return false
}

// Advance moves to the next step; blocked while the current step is invalid.
func (f *Form) Advance() bool {
	if f.step >= lastStep || !f.StepValid() {
		return false
	}
	f.step++
	return true
}

// Back moves to the previous step without re-validating anything.
func (f *Form) Back() bool {
	if f.step <= firstStep {
		return false
	}
	f.step--
	return true
}

func (f *Form) Reset() {
	*f = Form{step: firstStep, now: f.now}
}

// Complete reports whether the form is on the final step with every step's
// data present, i.e. ready to submit.
func (f *Form) Complete() bool {
	return f.step == lastStep && f.StepValid()
}

// Submission is the assembled create-appointment payload.
type Submission struct {
	HospitalID      uuid.UUID
	SpecialtyID     uuid.UUID
	ServiceType     string
	PatientName     string
	PatientCPF      string
	PatientBirth    string
	PatientPhone    string
	AppointmentDate time.Time
	AppointmentTime string
}

// Payload assembles all collected fields into one submission. The second
// return is false until the form is complete.
func (f *Form) Payload() (Submission, bool) {
	if !f.Complete() {
		return Submission{}, false
	}
	return Submission{
		HospitalID:      f.HospitalID,
		SpecialtyID:     f.SpecialtyID,
		ServiceType:     f.ServiceType,
		PatientName:     f.PatientName,
		PatientCPF:      f.PatientCPF,
		PatientBirth:    f.PatientBirth,
		PatientPhone:    f.PatientPhone,
		AppointmentDate: f.Date,
		AppointmentTime: f.Time,
	}, true
}

// Submitted records the outcome of the create call: success resets the whole
// form to step 1, failure preserves state so the user can retry.
func (f *Form) Submitted(success bool) {
	if success {
		f.Reset()
	}
}

func (f *Form) dateInPast() bool {
	today := f.now().Truncate(24 * time.Hour)
	return f.Date.Before(today)
}
