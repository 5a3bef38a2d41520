package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agendasaude/booking-portal/internal/session"
)

const testCookie = "portal_session"

type testEnv struct {
	router       http.Handler
	hospitals    *fakeHospitalRepo
	specialties  *fakeSpecialtyRepo
	appointments *fakeAppointmentRepo
	news         *fakeNewsRepo
	users        *fakeUserRepo
	images       *fakeImageGenerator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		hospitals:    newFakeHospitalRepo(),
		specialties:  newFakeSpecialtyRepo(),
		appointments: newFakeAppointmentRepo(),
		news:         newFakeNewsRepo(),
		users:        newFakeUserRepo(),
		images:       &fakeImageGenerator{url: "https://img.example/generated.png"},
	}

	env.router = NewRouter(RouterConfig{
		Hospitals:    env.hospitals,
		Specialties:  env.specialties,
		Appointments: env.appointments,
		News:         env.news,
		Users:        env.users,
		Sessions:     session.NewMemoryStore(time.Hour),
		Images:       env.images,
		CookieName:   testCookie,
		SessionTTL:   time.Hour,
		Env:          "test",
		Version:      "test",
	})

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns the session cookies issued with it.
func (e *testEnv) register(t *testing.T, email string) []*http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/register", RegisterRequest{
		Name:            "Test User",
		Email:           email,
		Password:        "Abcdef12",
		ConfirmPassword: "Abcdef12",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (e *testEnv) validCreateRequest(t *testing.T) CreateAppointmentRequest {
	t.Helper()

	hospital := e.seedHospital(t)
	specialty := e.seedSpecialty(t)

	return CreateAppointmentRequest{
		HospitalID:      hospital.String(),
		SpecialtyID:     specialty.String(),
		ServiceType:     "consulta",
		PatientName:     "Maria Souza",
		PatientCPF:      "123.456.789-00",
		PatientBirth:    "1958-03-14",
		PatientPhone:    "(11) 99999-0000",
		AppointmentDate: time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
		AppointmentTime: "09:00",
	}
}

func (e *testEnv) seedHospital(t *testing.T) uuid.UUID {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/hospitals", CreateHospitalRequest{
		Name:    fmt.Sprintf("Hospital %s", uuid.NewString()[:8]),
		Address: "Rua das Flores, 123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON[struct {
		ID uuid.UUID `json:"id"`
	}](t, rec).ID
}

func (e *testEnv) seedSpecialty(t *testing.T) uuid.UUID {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/specialties", CreateSpecialtyRequest{
		Name: fmt.Sprintf("Especialidade %s", uuid.NewString()[:8]),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON[struct {
		ID uuid.UUID `json:"id"`
	}](t, rec).ID
}
