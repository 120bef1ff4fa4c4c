package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/utils"
	"github.com/MKhiriev/lost-and-found/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{
		Login: req.Login,
		Email: req.Email,
		Name:  req.Name,
	}

	registeredUser, err := h.services.AuthService.Register(ctx, user, req.Password)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("login", registeredUser.Login).Msg("user registered")

	token, err := h.services.AuthService.Login(ctx, req.Login, req.Password)
	if err != nil {
		log.Err(err).Msg("post-registration login failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req.Login, req.Password)
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("login failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no session ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, sessionID); err != nil {
		log.Err(err).Msg("logout failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}
