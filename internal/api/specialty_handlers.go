package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agendasaude/booking-portal/internal/booking"
)

func (a *API) listSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := a.specialties.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, specialties)
}

func (a *API) getSpecialty(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_specialty_id", "id must be a valid UUID")
		return
	}

	specialty, err := a.specialties.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrSpecialtyNotFound) {
			writeError(w, http.StatusNotFound, "specialty_not_found", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, specialty)
}

func (a *API) createSpecialty(w http.ResponseWriter, r *http.Request) {
	var req CreateSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	if errs := validateCreateSpecialty(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "validation_error", errs[0].Message)
		return
	}

	specialty := &booking.Specialty{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	}

	if err := a.specialties.Create(r.Context(), specialty); err != nil {
		writeError(w, http.StatusBadRequest, "create_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, specialty)
}

// generateSpecialtyImage asks the external illustration service for an icon
// and persists only the returned URL.
func (a *API) generateSpecialtyImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_specialty_id", "id must be a valid UUID")
		return
	}

	specialty, err := a.specialties.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrSpecialtyNotFound) {
			writeError(w, http.StatusNotFound, "specialty_not_found", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	imageURL, err := a.images.SpecialtyIcon(r.Context(), specialty.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "image_generation_failed", err.Error())
		return
	}

	if err := a.specialties.UpdateImage(r.Context(), id, imageURL); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ImageResponse{ImageURL: imageURL})
}
