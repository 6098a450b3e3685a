package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/middleware"
	"github.com/snapchallan/rewards/internal/models"
	"go.uber.org/zap"
)

func (h *Handler) SubmitViolation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var report models.ViolationReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	violation, err := h.violationService.SubmitReport(r.Context(), userID, report)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(violation)
	case errors.Is(err, apperrors.ErrInvalidViolationType):
		http.Error(w, "unknown violation type", http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid input", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("submit violation error", zap.Error(err))
	}
}

func (h *Handler) GetMyViolations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	violations, err := h.violationService.GetReporterViolations(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get violations", zap.Error(err))
		return
	}

	if len(violations) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(violations)
}

type reviewRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) VerifyViolation(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.violationService.Verify)
}

func (h *Handler) RejectViolation(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.violationService.Reject)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, officerID int64, violationID, notes string) error) {
	officerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	violationID := chi.URLParam(r, "id")
	if violationID == "" {
		http.Error(w, "missing violation id", http.StatusBadRequest)
		return
	}

	var req reviewRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	err := apply(r.Context(), officerID, violationID, req.Notes)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrViolationNotFound):
		http.Error(w, "violation not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidViolationState):
		http.Error(w, "violation already reviewed", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("review violation error", zap.Error(err))
	}
}

func (h *Handler) GetViolationTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.violationService.ListTypes(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to list violation types", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(types)
}
