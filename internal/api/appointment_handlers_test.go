package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentsRequireSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/appointments", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "not_authenticated", decodeJSON[ErrorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPost, "/api/appointments", CreateAppointmentRequest{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.register(t, "maria@example.com")
	req := env.validCreateRequest(t)

	rec := env.do(t, http.MethodPost, "/api/appointments", req, cookies...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decodeJSON[AppointmentResponse](t, rec)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, req.HospitalID, resp.HospitalID.String())
	assert.Equal(t, req.SpecialtyID, resp.SpecialtyID.String())
	assert.Equal(t, "consulta", resp.ServiceType)
	assert.Equal(t, "Maria Souza", resp.PatientName)
	assert.Equal(t, "09:00", resp.AppointmentTime)
	assert.False(t, resp.Past)
	assert.Equal(t, 1, env.appointments.count())
}

func TestCreateAppointmentValidationFailurePersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.register(t, "maria@example.com")

	req := env.validCreateRequest(t)
	req.PatientCPF = ""

	rec := env.do(t, http.MethodPost, "/api/appointments", req, cookies...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decodeJSON[ErrorResponse](t, rec).Error)
	assert.Equal(t, 0, env.appointments.count())
}

// Two identical bookings for the same hospital, date and slot both succeed:
// nothing reserves a slot, so the second request creates a second row.
func TestCreateAppointmentDoesNotPreventDoubleBooking(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.register(t, "maria@example.com")
	req := env.validCreateRequest(t)

	first := env.do(t, http.MethodPost, "/api/appointments", req, cookies...)
	require.Equal(t, http.StatusCreated, first.Code)
	second := env.do(t, http.MethodPost, "/api/appointments", req, cookies...)
	require.Equal(t, http.StatusCreated, second.Code)

	firstID := decodeJSON[AppointmentResponse](t, first).ID
	secondID := decodeJSON[AppointmentResponse](t, second).ID
	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, 2, env.appointments.count())
}

func TestListAppointmentsIsOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	maria := env.register(t, "maria@example.com")
	joao := env.register(t, "joao@example.com")
	req := env.validCreateRequest(t)

	rec := env.do(t, http.MethodPost, "/api/appointments", req, maria...)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/appointments", nil, maria...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]AppointmentResponse](t, rec), 1)

	rec = env.do(t, http.MethodGet, "/api/appointments", nil, joao...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeJSON[[]AppointmentResponse](t, rec))
}

// Another user's appointment is indistinguishable from a missing one: 404 on
// read, update and delete alike.
func TestAppointmentOfAnotherUserLooksAbsent(t *testing.T) {
	env := newTestEnv(t)
	maria := env.register(t, "maria@example.com")
	joao := env.register(t, "joao@example.com")

	rec := env.do(t, http.MethodPost, "/api/appointments", env.validCreateRequest(t), maria...)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeJSON[AppointmentResponse](t, rec).ID

	rec = env.do(t, http.MethodGet, "/api/appointments/"+id.String(), nil, joao...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/appointments/"+id.String(), UpdateAppointmentRequest{
		AppointmentTime: strPtr("15:00"),
	}, joao...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/appointments/"+id.String(), nil, joao...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Untouched for the owner.
	rec = env.do(t, http.MethodGet, "/api/appointments/"+id.String(), nil, maria...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "09:00", decodeJSON[AppointmentResponse](t, rec).AppointmentTime)
}

func TestUpdateAppointmentPartial(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.register(t, "maria@example.com")

	rec := env.do(t, http.MethodPost, "/api/appointments", env.validCreateRequest(t), cookies...)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON[AppointmentResponse](t, rec)

	rec = env.do(t, http.MethodPut, "/api/appointments/"+created.ID.String(), UpdateAppointmentRequest{
		AppointmentTime: strPtr("16:00"),
	}, cookies...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeJSON[AppointmentResponse](t, rec)
	assert.Equal(t, "16:00", updated.AppointmentTime)
	// Everything not in the payload stays put.
	assert.Equal(t, created.PatientName, updated.PatientName)
	assert.Equal(t, created.HospitalID, updated.HospitalID)
	assert.True(t, created.AppointmentDate.Equal(updated.AppointmentDate))
}

func TestUpdateAppointmentRejectsBadPayload(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.register(t, "maria@example.com")

	rec := env.do(t, http.MethodPost, "/api/appointments", env.validCreateRequest(t), cookies...)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeJSON[AppointmentResponse](t, rec).ID

	rec = env.do(t, http.MethodPut, "/api/appointments/"+id.String(), UpdateAppointmentRequest{
		HospitalID: strPtr("not-a-uuid"),
	}, cookies...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAppointment(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.register(t, "maria@example.com")

	rec := env.do(t, http.MethodPost, "/api/appointments", env.validCreateRequest(t), cookies...)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeJSON[AppointmentResponse](t, rec).ID

	rec = env.do(t, http.MethodDelete, "/api/appointments/"+id.String(), nil, cookies...)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/appointments/"+id.String(), nil, cookies...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Deleting again answers 404, not 204.
	rec = env.do(t, http.MethodDelete, "/api/appointments/"+id.String(), nil, cookies...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUnknownAppointment(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.register(t, "maria@example.com")

	rec := env.do(t, http.MethodDelete, "/api/appointments/"+uuid.NewString(), nil, cookies...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppointmentMalformedID(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.register(t, "maria@example.com")

	rec := env.do(t, http.MethodGet, "/api/appointments/not-a-uuid", nil, cookies...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_appointment_id", decodeJSON[ErrorResponse](t, rec).Error)
}
