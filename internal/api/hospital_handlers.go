package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agendasaude/booking-portal/internal/booking"
)

func (a *API) listHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := a.hospitals.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, hospitals)
}

func (a *API) getHospital(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_hospital_id", "id must be a valid UUID")
		return
	}

	hospital, err := a.hospitals.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrHospitalNotFound) {
			writeError(w, http.StatusNotFound, "hospital_not_found", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, hospital)
}

func (a *API) createHospital(w http.ResponseWriter, r *http.Request) {
	var req CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	if errs := validateCreateHospital(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "validation_error", errs[0].Message)
		return
	}

	hospital := &booking.Hospital{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}

	if err := a.hospitals.Create(r.Context(), hospital); err != nil {
		writeError(w, http.StatusBadRequest, "create_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, hospital)
}
