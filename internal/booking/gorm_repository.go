package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormHospitalRepository struct {
	db *gorm.DB
}

func NewGormHospitalRepository(db *gorm.DB) *GormHospitalRepository {
	return &GormHospitalRepository{db: db}
}

func (r *GormHospitalRepository) Migrate() error {
	return r.db.AutoMigrate(&Hospital{})
}

func (r *GormHospitalRepository) List(ctx context.Context) ([]Hospital, error) {
	var hospitals []Hospital
	if err := r.db.WithContext(ctx).Find(&hospitals).Error; err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	return hospitals, nil
}

func (r *GormHospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	var h Hospital
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *GormHospitalRepository) Create(ctx context.Context, h *Hospital) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(h).Error
}

type GormSpecialtyRepository struct {
	db *gorm.DB
}

func NewGormSpecialtyRepository(db *gorm.DB) *GormSpecialtyRepository {
	return &GormSpecialtyRepository{db: db}
}

func (r *GormSpecialtyRepository) Migrate() error {
	return r.db.AutoMigrate(&Specialty{})
}

func (r *GormSpecialtyRepository) List(ctx context.Context) ([]Specialty, error) {
	var specialties []Specialty
	if err := r.db.WithContext(ctx).Find(&specialties).Error; err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	return specialties, nil
}

func (r *GormSpecialtyRepository) GetByID(ctx context.Context, id uuid.UUID) (*Specialty, error) {
	var s Specialty
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormSpecialtyRepository) Create(ctx context.Context, s *Specialty) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *GormSpecialtyRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	res := r.db.WithContext(ctx).
		Model(&Specialty{}).
		Where("id = ?", id).
		Update("image_url", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSpecialtyNotFound
	}
	return nil
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Migrate() error {
	return r.db.AutoMigrate(&Appointment{})
}

func (r *GormAppointmentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Appointment, error) {
	var appointments []Appointment
	err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerID).
		Order("appointment_date").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*Appointment, error) {
	var a Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_user_id = ?", id, ownerID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *GormAppointmentRepository) Create(ctx context.Context, a *Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *GormAppointmentRepository) UpdateForOwner(ctx context.Context, id, ownerID uuid.UUID, changes AppointmentChanges) (*Appointment, error) {
	cols := changedColumns(changes)
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).
			Model(&Appointment{}).
			Where("id = ? AND owner_user_id = ?", id, ownerID).
			Updates(cols)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrAppointmentNotFound
		}
	}
	return r.GetByIDForOwner(ctx, id, ownerID)
}

func (r *GormAppointmentRepository) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_user_id = ?", id, ownerID).
		Delete(&Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func changedColumns(c AppointmentChanges) map[string]any {
	cols := make(map[string]any)
	if c.HospitalID != nil {
		cols["hospital_id"] = *c.HospitalID
	}
	if c.SpecialtyID != nil {
		cols["specialty_id"] = *c.SpecialtyID
	}
	if c.ServiceType != nil {
		cols["service_type"] = *c.ServiceType
	}
	if c.PatientName != nil {
		cols["patient_name"] = *c.PatientName
	}
	if c.PatientCPF != nil {
		cols["patient_cpf"] = *c.PatientCPF
	}
	if c.PatientBirth != nil {
		cols["patient_birth"] = *c.PatientBirth
	}
	if c.PatientPhone != nil {
		cols["patient_phone"] = *c.PatientPhone
	}
	if c.AppointmentDate != nil {
		cols["appointment_date"] = *c.AppointmentDate
	}
	if c.AppointmentTime != nil {
		cols["appointment_time"] = *c.AppointmentTime
	}
	return cols
}
