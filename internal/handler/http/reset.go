package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/utils"
	"github.com/MKhiriev/lost-and-found/models"
)

// forgotPassword starts the password recovery flow. The response is the same
// whether or not the email belongs to an account.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.RequestReset(ctx, req.Email); err != nil {
		log.Err(err).Msg("reset request failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}

// resetPassword completes the recovery flow by exchanging a reset token for a
// new password.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.ConsumeReset(ctx, req.Token, req.NewPassword); err != nil {
		log.Err(err).Msg("reset consumption failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}
