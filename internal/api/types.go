package api

import (
	"time"

	"github.com/google/uuid"
)

type CreateHospitalRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
}

type CreateSpecialtyRequest struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

type CreateNewsRequest struct {
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	ImageURL *string `json:"imageUrl"`
}

type CreateAppointmentRequest struct {
	HospitalID      string `json:"hospitalId"`
	SpecialtyID     string `json:"specialtyId"`
	ServiceType     string `json:"serviceType"`
	PatientName     string `json:"patientName"`
	PatientCPF      string `json:"patientCPF"`
	PatientBirth    string `json:"patientBirth"`
	PatientPhone    string `json:"patientPhone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// UpdateAppointmentRequest is a partial payload: absent fields stay untouched.
type UpdateAppointmentRequest struct {
	HospitalID      *string `json:"hospitalId"`
	SpecialtyID     *string `json:"specialtyId"`
	ServiceType     *string `json:"serviceType"`
	PatientName     *string `json:"patientName"`
	PatientCPF      *string `json:"patientCPF"`
	PatientBirth    *string `json:"patientBirth"`
	PatientPhone    *string `json:"patientPhone"`
	AppointmentDate *string `json:"appointmentDate"`
	AppointmentTime *string `json:"appointmentTime"`
}

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	HospitalID      uuid.UUID `json:"hospitalId"`
	SpecialtyID     uuid.UUID `json:"specialtyId"`
	ServiceType     string    `json:"serviceType"`
	PatientName     string    `json:"patientName"`
	PatientCPF      string    `json:"patientCPF"`
	PatientBirth    string    `json:"patientBirth"`
	PatientPhone    string    `json:"patientPhone"`
	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	CreatedAt       time.Time `json:"createdAt"`
	// Past is derived at read time; "completed" is a display notion, never
	// stored.
	Past bool `json:"past"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword"`
	ConfirmPassword string  `json:"confirmPassword"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	UserID      string `json:"userId"`
	NewPassword string `json:"newPassword"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone *string   `json:"phone,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
