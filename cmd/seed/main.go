package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/agendasaude/booking-portal/internal/booking"
	"github.com/agendasaude/booking-portal/internal/db"
	"github.com/agendasaude/booking-portal/internal/news"
	"github.com/agendasaude/booking-portal/internal/password"
	"github.com/agendasaude/booking-portal/internal/user"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gdb, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}

	hospitals := booking.NewGormHospitalRepository(gdb)
	specialties := booking.NewGormSpecialtyRepository(gdb)
	appointments := booking.NewGormAppointmentRepository(gdb)
	newsRepo := news.NewGormRepository(gdb)
	users := user.NewGormRepository(gdb)

	for _, migrate := range []func() error{
		hospitals.Migrate, specialties.Migrate, users.Migrate,
		appointments.Migrate, newsRepo.Migrate,
	} {
		if err := migrate(); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	gofakeit.Seed(time.Now().UnixNano())

	seedCtx := context.Background()

	hospitalIDs, err := seedHospitals(seedCtx, hospitals)
	if err != nil {
		log.Fatalf("seed hospitals: %v", err)
	}
	specialtyIDs, err := seedSpecialties(seedCtx, specialties)
	if err != nil {
		log.Fatalf("seed specialties: %v", err)
	}
	if err := seedNews(seedCtx, newsRepo); err != nil {
		log.Fatalf("seed news: %v", err)
	}
	if err := seedDemoAccounts(seedCtx, users, appointments, hospitalIDs, specialtyIDs, 20); err != nil {
		log.Fatalf("seed demo accounts: %v", err)
	}

	log.Println("seed complete")
}

func strPtr(s string) *string { return &s }

func seedHospitals(ctx context.Context, repo *booking.GormHospitalRepository) ([]uuid.UUID, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Println("hospitals already seeded, skipping")
		return hospitalIDs(existing), nil
	}

	data := []booking.Hospital{
		{Name: "Hospital Municipal de São Caetano", Address: "Rua das Flores, 123 - Centro", Phone: strPtr("(11) 4229-1234")},
		{Name: "Hospital Dr. Manoel de Abreu", Address: "Av. Goiás, 1000 - Barcelona", Phone: strPtr("(11) 4229-5678")},
		{Name: "UPA 24h São Caetano", Address: "Rua Amazonas, 500 - Fundação", Phone: strPtr("(11) 4229-9012")},
	}

	var ids []uuid.UUID
	for i := range data {
		if err := repo.Create(ctx, &data[i]); err != nil {
			return nil, err
		}
		ids = append(ids, data[i].ID)
	}
	log.Printf("seeded %d hospitals", len(data))
	return ids, nil
}

func hospitalIDs(hs []booking.Hospital) []uuid.UUID {
	ids := make([]uuid.UUID, len(hs))
	for i, h := range hs {
		ids[i] = h.ID
	}
	return ids
}

func seedSpecialties(ctx context.Context, repo *booking.GormSpecialtyRepository) ([]uuid.UUID, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Println("specialties already seeded, skipping")
		ids := make([]uuid.UUID, len(existing))
		for i, s := range existing {
			ids[i] = s.ID
		}
		return ids, nil
	}

	names := []string{
		"Cardiologia", "Ortopedia", "Pediatria", "Ginecologia",
		"Dermatologia", "Oftalmologia", "Neurologia", "Clínico Geral",
	}

	var ids []uuid.UUID
	for _, name := range names {
		s := booking.Specialty{Name: name}
		if err := repo.Create(ctx, &s); err != nil {
			return nil, err
		}
		ids = append(ids, s.ID)
	}
	log.Printf("seeded %d specialties", len(names))
	return ids, nil
}

func seedNews(ctx context.Context, repo *news.GormRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("news already seeded, skipping")
		return nil
	}

	articles := []news.Article{
		{
			Title:    "Nova Campanha de Vacinação contra a Gripe",
			Summary:  "A Secretaria de Saúde anuncia o início da campanha de vacinação contra a gripe para idosos e grupos prioritários. Atendimento disponível em todas as unidades.",
			Content:  "A partir desta semana, todas as unidades de saúde de São Caetano do Sul estarão realizando a vacinação contra a gripe. A campanha prioriza idosos acima de 60 anos, gestantes, crianças de 6 meses a 5 anos, e pessoas com doenças crônicas.",
			Category: "Vacinação",
		},
		{
			Title:    "Dicas para Prevenir Doenças Cardiovasculares",
			Summary:  "Especialistas compartilham orientações importantes sobre alimentação saudável, exercícios físicos e check-ups regulares para cuidar do coração.",
			Content:  "Manter uma alimentação equilibrada, praticar exercícios regularmente e realizar check-ups periódicos são medidas essenciais para prevenir doenças cardiovasculares. Consulte seu cardiologista regularmente.",
			Category: "Prevenção",
		},
		{
			Title:    "Novos Horários de Atendimento nos Hospitais",
			Summary:  "A partir desta semana, os hospitais de São Caetano do Sul ampliam horários de atendimento para melhor atender a população.",
			Content:  "Os hospitais municipais agora funcionam com horário estendido das 7h às 20h de segunda a sexta-feira, e das 8h às 14h aos sábados. A UPA 24h continua com atendimento ininterrupto.",
			Category: "Atendimento",
		},
		{
			Title:    "Importância do Check-up Regular",
			Summary:  "Médicos reforçam a necessidade de realizar exames de rotina para detectar doenças precocemente e manter a saúde em dia.",
			Content:  "Realizar exames de rotina anualmente pode salvar vidas. Check-ups regulares permitem detectar doenças em estágios iniciais, quando o tratamento é mais eficaz.",
			Category: "Saúde",
		},
		{
			Title:    "Campanha de Conscientização sobre Diabetes",
			Summary:  "Ações educativas sobre prevenção e controle do diabetes serão realizadas nas unidades de saúde durante todo o mês.",
			Content:  "Durante este mês, as unidades de saúde realizarão palestras e orientações sobre diabetes. Aprenda a prevenir e controlar esta doença que afeta milhões de brasileiros.",
			Category: "Prevenção",
		},
		{
			Title:    "Novo Equipamento de Ressonância Magnética",
			Summary:  "Hospital Municipal recebe novo equipamento de última geração para exames de ressonância magnética, reduzindo tempo de espera.",
			Content:  "O Hospital Municipal de São Caetano acaba de receber um equipamento de ressonância magnética de última geração, que permitirá realizar mais exames com maior precisão e menor tempo de espera.",
			Category: "Tecnologia",
		},
	}

	for i := range articles {
		if err := repo.Create(ctx, &articles[i]); err != nil {
			return err
		}
	}
	log.Printf("seeded %d news articles", len(articles))
	return nil
}

// seedDemoAccounts creates fake users, each with a couple of future
// appointments, for development environments.
func seedDemoAccounts(ctx context.Context, users *user.GormRepository, appointments *booking.GormAppointmentRepository, hospitalIDs, specialtyIDs []uuid.UUID, count int) error {
	hash, err := password.Hash("Demo1234")
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		u := user.User{
			Name:         gofakeit.Name(),
			Email:        gofakeit.Email(),
			PasswordHash: hash,
			Phone:        strPtr(gofakeit.Phone()),
		}
		if err := users.Create(ctx, &u); err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				continue
			}
			return err
		}

		for j := 0; j < gofakeit.Number(1, 3); j++ {
			serviceType := booking.ServiceConsultation
			if gofakeit.Bool() {
				serviceType = booking.ServiceExam
			}

			appt := booking.Appointment{
				HospitalID:      hospitalIDs[gofakeit.Number(0, len(hospitalIDs)-1)],
				SpecialtyID:     specialtyIDs[gofakeit.Number(0, len(specialtyIDs)-1)],
				ServiceType:     serviceType,
				PatientName:     u.Name,
				PatientCPF:      gofakeit.Numerify("###.###.###-##"),
				PatientBirth:    gofakeit.Date().Format("2006-01-02"),
				PatientPhone:    *u.Phone,
				AppointmentDate: time.Now().AddDate(0, 0, gofakeit.Number(1, 30)),
				AppointmentTime: booking.TimeSlots[gofakeit.Number(0, len(booking.TimeSlots)-1)],
				OwnerUserID:     &u.ID,
			}
			if err := appointments.Create(ctx, &appt); err != nil {
				return err
			}
		}
	}

	log.Printf("seeded %d demo accounts", count)
	return nil
}
