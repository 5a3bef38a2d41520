package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agendasaude/booking-portal/internal/booking"
	"github.com/agendasaude/booking-portal/internal/news"
	"github.com/agendasaude/booking-portal/internal/user"
)

// Map-backed fakes mirroring the GORM repositories' contracts, so handler
// tests can exercise full request flows without a database.

type fakeHospitalRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]booking.Hospital
}

func newFakeHospitalRepo() *fakeHospitalRepo {
	return &fakeHospitalRepo{items: make(map[uuid.UUID]booking.Hospital)}
}

func (r *fakeHospitalRepo) List(ctx context.Context) ([]booking.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]booking.Hospital, 0, len(r.items))
	for _, h := range r.items {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHospitalRepo) GetByID(ctx context.Context, id uuid.UUID) (*booking.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.items[id]
	if !ok {
		return nil, booking.ErrHospitalNotFound
	}
	return &h, nil
}

func (r *fakeHospitalRepo) Create(ctx context.Context, h *booking.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.items[h.ID] = *h
	return nil
}

type fakeSpecialtyRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]booking.Specialty
}

func newFakeSpecialtyRepo() *fakeSpecialtyRepo {
	return &fakeSpecialtyRepo{items: make(map[uuid.UUID]booking.Specialty)}
}

func (r *fakeSpecialtyRepo) List(ctx context.Context) ([]booking.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]booking.Specialty, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSpecialtyRepo) GetByID(ctx context.Context, id uuid.UUID) (*booking.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, booking.ErrSpecialtyNotFound
	}
	return &s, nil
}

func (r *fakeSpecialtyRepo) Create(ctx context.Context, s *booking.Specialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.items[s.ID] = *s
	return nil
}

func (r *fakeSpecialtyRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return booking.ErrSpecialtyNotFound
	}
	s.ImageURL = &imageURL
	r.items[id] = s
	return nil
}

type fakeAppointmentRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]booking.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{items: make(map[uuid.UUID]booking.Appointment)}
}

func (r *fakeAppointmentRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]booking.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []booking.Appointment
	for _, a := range r.items {
		if a.OwnerUserID != nil && *a.OwnerUserID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*booking.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok || a.OwnerUserID == nil || *a.OwnerUserID != ownerID {
		return nil, booking.ErrAppointmentNotFound
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, a *booking.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	r.items[a.ID] = *a
	return nil
}

func (r *fakeAppointmentRepo) UpdateForOwner(ctx context.Context, id, ownerID uuid.UUID, changes booking.AppointmentChanges) (*booking.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok || a.OwnerUserID == nil || *a.OwnerUserID != ownerID {
		return nil, booking.ErrAppointmentNotFound
	}
	if changes.HospitalID != nil {
		a.HospitalID = *changes.HospitalID
	}
	if changes.SpecialtyID != nil {
		a.SpecialtyID = *changes.SpecialtyID
	}
	if changes.ServiceType != nil {
		a.ServiceType = *changes.ServiceType
	}
	if changes.PatientName != nil {
		a.PatientName = *changes.PatientName
	}
	if changes.PatientCPF != nil {
		a.PatientCPF = *changes.PatientCPF
	}
	if changes.PatientBirth != nil {
		a.PatientBirth = *changes.PatientBirth
	}
	if changes.PatientPhone != nil {
		a.PatientPhone = *changes.PatientPhone
	}
	if changes.AppointmentDate != nil {
		a.AppointmentDate = *changes.AppointmentDate
	}
	if changes.AppointmentTime != nil {
		a.AppointmentTime = *changes.AppointmentTime
	}
	r.items[id] = a
	return &a, nil
}

func (r *fakeAppointmentRepo) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok || a.OwnerUserID == nil || *a.OwnerUserID != ownerID {
		return booking.ErrAppointmentNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeAppointmentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type fakeNewsRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]news.Article
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{items: make(map[uuid.UUID]news.Article)}
}

func (r *fakeNewsRepo) List(ctx context.Context) ([]news.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]news.Article, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeNewsRepo) GetByID(ctx context.Context, id uuid.UUID) (*news.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, news.ErrNotFound
	}
	return &a, nil
}

func (r *fakeNewsRepo) Create(ctx context.Context, a *news.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Now()
	}
	r.items[a.ID] = *a
	return nil
}

func (r *fakeNewsRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return news.ErrNotFound
	}
	a.ImageURL = &imageURL
	r.items[id] = a
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[uuid.UUID]user.User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.items[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, changes user.Changes) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	if changes.Email != nil {
		for otherID, other := range r.items {
			if otherID != id && other.Email == *changes.Email {
				return nil, user.ErrEmailTaken
			}
		}
		u.Email = *changes.Email
	}
	if changes.Phone != nil {
		u.Phone = changes.Phone
	}
	if changes.PasswordHash != nil {
		u.PasswordHash = *changes.PasswordHash
	}
	r.items[id] = u
	return &u, nil
}

type fakeImageGenerator struct {
	url string
	err error
}

func (g *fakeImageGenerator) SpecialtyIcon(ctx context.Context, name string) (string, error) {
	return g.url, g.err
}

func (g *fakeImageGenerator) NewsImage(ctx context.Context, title, category string) (string, error) {
	return g.url, g.err
}
