package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/agendasaude/booking-portal/internal/api"
	"github.com/agendasaude/booking-portal/internal/booking"
	"github.com/agendasaude/booking-portal/internal/config"
	"github.com/agendasaude/booking-portal/internal/db"
	"github.com/agendasaude/booking-portal/internal/imagegen"
	"github.com/agendasaude/booking-portal/internal/news"
	redisclient "github.com/agendasaude/booking-portal/internal/redis"
	"github.com/agendasaude/booking-portal/internal/session"
	"github.com/agendasaude/booking-portal/internal/user"
)

const version = "1.0.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("api-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s", cfg.Env, cfg.HTTPPort)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect Postgres
	pgCtx, cancelPg := context.WithTimeout(rootCtx, 10*time.Second)
	gdb, err := db.ConnectPostgres(pgCtx, cfg.PostgresDSN)
	cancelPg()
	if err != nil {
		log.Fatalf("postgres connection error: %v", err)
	}
	log.Println("connected to Postgres")

	// Connect Redis
	rdb, err := redisclient.NewRedisClient(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis connection error: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}()
	log.Println("connected to Redis")

	hospitals := booking.NewGormHospitalRepository(gdb)
	specialties := booking.NewGormSpecialtyRepository(gdb)
	appointments := booking.NewGormAppointmentRepository(gdb)
	newsRepo := news.NewGormRepository(gdb)
	users := user.NewGormRepository(gdb)

	for name, migrate := range map[string]func() error{
		"hospitals":    hospitals.Migrate,
		"specialties":  specialties.Migrate,
		"users":        users.Migrate,
		"appointments": appointments.Migrate,
		"news":         newsRepo.Migrate,
	} {
		if err := migrate(); err != nil {
			log.Fatalf("migrate %s: %v", name, err)
		}
	}

	router := api.NewRouter(api.RouterConfig{
		Hospitals:    hospitals,
		Specialties:  specialties,
		Appointments: appointments,
		News:         newsRepo,
		Users:        users,
		Sessions:     session.NewRedisStore(rdb, cfg.SessionTTL),
		Images:       imagegen.NewClient(cfg.ImageAPIURL, cfg.ImageAPIKey),
		CookieName:   cfg.SessionCookie,
		SessionTTL:   cfg.SessionTTL,
		AuthLimiter:  api.NewRateLimiter(cfg.AuthRPS, cfg.AuthBurst),
		DB:           gdb,
		Redis:        rdb,
		Env:          cfg.Env,
		Version:      version,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-rootCtx.Done()

	log.Println("shutting down api-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}
