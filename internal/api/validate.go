package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldError is one violated request-shape rule. Validators accumulate every
// violation; handlers surface the first one's message with a 400.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func required(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Message: field + " is required"})
	}
	return errs
}

func validUUID(errs []FieldError, field, value string) []FieldError {
	if _, err := uuid.Parse(value); err != nil {
		errs = append(errs, FieldError{Field: field, Message: field + " must be a valid UUID"})
	}
	return errs
}

func validEmail(errs []FieldError, field, value string) []FieldError {
	at := strings.Index(value, "@")
	if at < 1 || at == len(value)-1 || !strings.Contains(value[at+1:], ".") {
		errs = append(errs, FieldError{Field: field, Message: "invalid email address"})
	}
	return errs
}

// parseDate accepts the wire formats the web client sends: RFC 3339 or a bare
// calendar date.
func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func validateCreateHospital(req CreateHospitalRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "name", req.Name)
	errs = required(errs, "address", req.Address)
	return errs
}

func validateCreateSpecialty(req CreateSpecialtyRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "name", req.Name)
	return errs
}

func validateCreateNews(req CreateNewsRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "title", req.Title)
	errs = required(errs, "summary", req.Summary)
	errs = required(errs, "content", req.Content)
	errs = required(errs, "category", req.Category)
	return errs
}

// validateCreateAppointment checks shape only: all patient fields present,
// references parseable, date coercible. Whether the slot is actually free is
// deliberately not checked anywhere.
func validateCreateAppointment(req CreateAppointmentRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "hospitalId", req.HospitalID)
	if req.HospitalID != "" {
		errs = validUUID(errs, "hospitalId", req.HospitalID)
	}
	errs = required(errs, "specialtyId", req.SpecialtyID)
	if req.SpecialtyID != "" {
		errs = validUUID(errs, "specialtyId", req.SpecialtyID)
	}
	errs = required(errs, "serviceType", req.ServiceType)
	errs = required(errs, "patientName", req.PatientName)
	errs = required(errs, "patientCPF", req.PatientCPF)
	errs = required(errs, "patientBirth", req.PatientBirth)
	errs = required(errs, "patientPhone", req.PatientPhone)
	errs = required(errs, "appointmentDate", req.AppointmentDate)
	if req.AppointmentDate != "" {
		if _, ok := parseDate(req.AppointmentDate); !ok {
			errs = append(errs, FieldError{Field: "appointmentDate", Message: "appointmentDate must be a valid date"})
		}
	}
	errs = required(errs, "appointmentTime", req.AppointmentTime)
	return errs
}

// validateUpdateAppointment checks only the supplied fields.
func validateUpdateAppointment(req UpdateAppointmentRequest) []FieldError {
	var errs []FieldError
	if req.HospitalID != nil {
		errs = validUUID(errs, "hospitalId", *req.HospitalID)
	}
	if req.SpecialtyID != nil {
		errs = validUUID(errs, "specialtyId", *req.SpecialtyID)
	}
	if req.ServiceType != nil {
		errs = required(errs, "serviceType", *req.ServiceType)
	}
	if req.PatientName != nil {
		errs = required(errs, "patientName", *req.PatientName)
	}
	if req.PatientCPF != nil {
		errs = required(errs, "patientCPF", *req.PatientCPF)
	}
	if req.PatientBirth != nil {
		errs = required(errs, "patientBirth", *req.PatientBirth)
	}
	if req.PatientPhone != nil {
		errs = required(errs, "patientPhone", *req.PatientPhone)
	}
	if req.AppointmentDate != nil {
		if _, ok := parseDate(*req.AppointmentDate); !ok {
			errs = append(errs, FieldError{Field: "appointmentDate", Message: "appointmentDate must be a valid date"})
		}
	}
	if req.AppointmentTime != nil {
		errs = required(errs, "appointmentTime", *req.AppointmentTime)
	}
	return errs
}

func validateRegister(req RegisterRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "name", req.Name)
	errs = required(errs, "email", req.Email)
	if req.Email != "" {
		errs = validEmail(errs, "email", req.Email)
	}
	errs = required(errs, "password", req.Password)
	if req.Password != req.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	return errs
}

func validateLogin(req LoginRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "email", req.Email)
	if req.Email != "" {
		errs = validEmail(errs, "email", req.Email)
	}
	errs = required(errs, "password", req.Password)
	return errs
}

func validateUpdateProfile(req UpdateProfileRequest) []FieldError {
	var errs []FieldError
	errs = required(errs, "email", req.Email)
	if req.Email != "" {
		errs = validEmail(errs, "email", req.Email)
	}
	if req.NewPassword != "" && req.CurrentPassword == "" {
		errs = append(errs, FieldError{Field: "currentPassword", Message: "current password is required to change the password"})
	}
	if req.NewPassword != "" && req.NewPassword != req.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	return errs
}
