package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/user/frontpage-archiver/internal/delivery/http/request"
	"github.com/user/frontpage-archiver/internal/delivery/http/response"
	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
	"github.com/user/frontpage-archiver/internal/usecase"
	"github.com/user/frontpage-archiver/pkg/utils"
)

type Handler struct {
	dayManager usecase.DayManager
}

func NewHandler(dayManager usecase.DayManager) *Handler {
	return &Handler{
		dayManager: dayManager,
	}
}

func (h *Handler) HandleSubmitDay(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.dayManager.Submit(r.Context(), req.Day, req.Force); err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidDate):
			h.writeJSONError(w, "Invalid day, expected YYYY-MM-DD", http.StatusBadRequest)
		case errors.Is(err, usecase.ErrDayNotComplete):
			h.writeJSONError(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, usecase.ErrDayAlreadyArchived):
			h.writeJSONError(w, err.Error(), http.StatusConflict)
		default:
			slog.Error("Failed to submit day", "day", req.Day, "error", err)
			h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	resp := response.SubmitDayResponse{
		Status:  "success",
		Message: "Day queued for crawling",
		Day:     req.Day,
	}
	h.writeJSON(w, http.StatusAccepted, resp)
}

func (h *Handler) HandleGetDayStatus(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")

	status, err := h.dayManager.GetStatus(r.Context(), day)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			h.writeJSONError(w, "Invalid day, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		slog.Error("Failed to get day status", "day", day, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if status.CurrentStatus == entity.DayStatusNotFound {
		h.writeJSONError(w, "Day has not been crawled", http.StatusNotFound)
		return
	}

	resp := response.DayStatusResponse{
		Day:           status.Day,
		CurrentStatus: status.CurrentStatus,
		Posts:         status.Posts,
		Pages:         status.Pages,
		FailureReason: status.FailureReason,
		UpdatedAt:     status.UpdatedAt,
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleGetDayPosts(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")

	posts, err := h.dayManager.GetPosts(r.Context(), day)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidDate):
			h.writeJSONError(w, "Invalid day, expected YYYY-MM-DD", http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			h.writeJSONError(w, "Day has not been archived", http.StatusNotFound)
		default:
			slog.Error("Failed to load day archive", "day", day, "error", err)
			h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
