package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/logger"
	"go.uber.org/zap"
)

type challanPaidRequest struct {
	ViolationID   string `json:"violation_id"`
	ChallanAmount int64  `json:"challan_amount"`
}

// ChallanPaid is the webhook the challan subsystem calls once a fine is
// collected. Delivery is at least once; the service answers redeliveries with
// the original entry and a 200, so the caller can always treat 200 as done.
func (h *Handler) ChallanPaid(w http.ResponseWriter, r *http.Request) {
	var req challanPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ViolationID == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	entry, err := h.rewardService.OnChallanPaid(r.Context(), req.ViolationID, req.ChallanAmount)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(entry)
	case errors.Is(err, apperrors.ErrViolationNotFound):
		http.Error(w, "violation not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidViolationState):
		http.Error(w, "violation not in creditable state", http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid input", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("challan paid error", zap.Error(err))
	}
}
