package booking

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlots is the fixed set of daily booking slots. The wizard enforces it;
// the data layer intentionally does not (observed behavior of the portal).
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00", "17:00",
}

func IsTimeSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// Service types offered by the wizard's second step.
const (
	ServiceConsultation = "consulta"
	ServiceExam         = "exame"
)

// Hospital is immutable reference data.
type Hospital struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name    string    `json:"name" gorm:"not null"`
	Address string    `json:"address" gorm:"not null"`
	Phone   *string   `json:"phone"`
}

// Specialty is reference data with a mutable image field.
type Specialty struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name     string    `json:"name" gorm:"uniqueIndex;not null"`
	ImageURL *string   `json:"imageUrl" gorm:"column:image_url"`
}

// Appointment is one booked visit. Patient data is denormalized onto the row;
// there is no patient entity. Absence of the row means cancelled or never
// booked; no status column exists.
type Appointment struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	HospitalID      uuid.UUID  `json:"hospitalId" gorm:"type:uuid;not null"`
	Hospital        *Hospital  `json:"-" gorm:"foreignKey:HospitalID"`
	SpecialtyID     uuid.UUID  `json:"specialtyId" gorm:"type:uuid;not null"`
	Specialty       *Specialty `json:"-" gorm:"foreignKey:SpecialtyID"`
	ServiceType     string     `json:"serviceType" gorm:"not null"`
	PatientName     string     `json:"patientName" gorm:"not null"`
	PatientCPF      string     `json:"patientCPF" gorm:"column:patient_cpf;not null"`
	PatientBirth    string     `json:"patientBirth" gorm:"not null"`
	PatientPhone    string     `json:"patientPhone" gorm:"not null"`
	AppointmentDate time.Time  `json:"appointmentDate" gorm:"not null"`
	AppointmentTime string     `json:"appointmentTime" gorm:"not null"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	OwnerUserID     *uuid.UUID `json:"ownerUserId,omitempty" gorm:"type:uuid;index"`
}

// AppointmentChanges is a partial update; nil fields are left untouched.
type AppointmentChanges struct {
	HospitalID      *uuid.UUID
	SpecialtyID     *uuid.UUID
	ServiceType     *string
	PatientName     *string
	PatientCPF      *string
	PatientBirth    *string
	PatientPhone    *string
	AppointmentDate *time.Time
	AppointmentTime *string
}
