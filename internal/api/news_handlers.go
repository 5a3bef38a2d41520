package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agendasaude/booking-portal/internal/news"
)

func (a *API) listNews(w http.ResponseWriter, r *http.Request) {
	articles, err := a.news.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (a *API) getNews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_news_id", "id must be a valid UUID")
		return
	}

	article, err := a.news.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, news.ErrNotFound) {
			writeError(w, http.StatusNotFound, "news_not_found", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (a *API) createNews(w http.ResponseWriter, r *http.Request) {
	var req CreateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	if errs := validateCreateNews(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "validation_error", errs[0].Message)
		return
	}

	article := &news.Article{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}

	if err := a.news.Create(r.Context(), article); err != nil {
		writeError(w, http.StatusBadRequest, "create_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

func (a *API) generateNewsImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_news_id", "id must be a valid UUID")
		return
	}

	article, err := a.news.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, news.ErrNotFound) {
			writeError(w, http.StatusNotFound, "news_not_found", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	imageURL, err := a.images.NewsImage(r.Context(), article.Title, article.Category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "image_generation_failed", err.Error())
		return
	}

	if err := a.news.UpdateImage(r.Context(), id, imageURL); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ImageResponse{ImageURL: imageURL})
}
