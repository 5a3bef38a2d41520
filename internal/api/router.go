package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/agendasaude/booking-portal/internal/booking"
	"github.com/agendasaude/booking-portal/internal/imagegen"
	"github.com/agendasaude/booking-portal/internal/news"
	"github.com/agendasaude/booking-portal/internal/password"
	"github.com/agendasaude/booking-portal/internal/session"
	"github.com/agendasaude/booking-portal/internal/user"
)

// API holds the injected collaborators for every route handler. Repositories
// are constructed by the caller and passed in; nothing here is process-global.
type API struct {
	hospitals     booking.HospitalRepository
	specialties   booking.SpecialtyRepository
	appointments  booking.AppointmentRepository
	news          news.Repository
	users         user.Repository
	sessions      session.Store
	images        imagegen.Generator
	passwordRules []password.Rule
	cookieName    string
	sessionTTL    time.Duration
	secureCookies bool
}

type RouterConfig struct {
	Hospitals    booking.HospitalRepository
	Specialties  booking.SpecialtyRepository
	Appointments booking.AppointmentRepository
	News         news.Repository
	Users        user.Repository
	Sessions     session.Store
	Images       imagegen.Generator

	// PasswordRules defaults to password.Rules when nil.
	PasswordRules []password.Rule

	CookieName string
	SessionTTL time.Duration

	// AuthLimiter, when set, wraps register and login.
	AuthLimiter *RateLimiter

	DB      *gorm.DB
	Redis   *redis.Client
	Env     string
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	rules := cfg.PasswordRules
	if rules == nil {
		rules = password.Rules
	}
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "portal_session"
	}

	a := &API{
		hospitals:     cfg.Hospitals,
		specialties:   cfg.Specialties,
		appointments:  cfg.Appointments,
		news:          cfg.News,
		users:         cfg.Users,
		sessions:      cfg.Sessions,
		images:        cfg.Images,
		passwordRules: rules,
		cookieName:    cookieName,
		sessionTTL:    cfg.SessionTTL,
		secureCookies: cfg.Env == "prod",
	}

	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	// Health endpoints
	health := NewHealthHandler(cfg.DB, cfg.Redis, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api", func(r chi.Router) {
		// Reference data and news stay open.
		r.Get("/hospitals", a.listHospitals)
		r.Get("/hospitals/{id}", a.getHospital)
		r.Post("/hospitals", a.createHospital)

		r.Get("/specialties", a.listSpecialties)
		r.Get("/specialties/{id}", a.getSpecialty)
		r.Post("/specialties", a.createSpecialty)
		r.Post("/specialties/{id}/generate-image", a.generateSpecialtyImage)

		r.Get("/news", a.listNews)
		r.Get("/news/{id}", a.getNews)
		r.Post("/news", a.createNews)
		r.Post("/news/{id}/generate-image", a.generateNewsImage)

		// Appointment CRUD is session-scoped.
		r.Group(func(r chi.Router) {
			r.Use(a.requireAuth)
			r.Get("/appointments", a.listAppointments)
			r.Post("/appointments", a.createAppointment)
			r.Get("/appointments/{id}", a.getAppointment)
			r.Put("/appointments/{id}", a.updateAppointment)
			r.Delete("/appointments/{id}", a.deleteAppointment)
		})

		r.Route("/auth", func(r chi.Router) {
			if cfg.AuthLimiter != nil {
				r.With(cfg.AuthLimiter.Middleware).Post("/register", a.register)
				r.With(cfg.AuthLimiter.Middleware).Post("/login", a.login)
			} else {
				r.Post("/register", a.register)
				r.Post("/login", a.login)
			}
			r.Post("/logout", a.logout)
			r.Get("/me", a.me)
			r.With(a.requireAuth).Put("/profile", a.updateProfile)
			r.Post("/verify-email", a.verifyEmail)
			r.Post("/reset-password", a.resetPassword)
		})
	})

	return r
}
