package http

import (
	"net/http"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/utils"
	"github.com/MKhiriev/lost-and-found/models"
)

// latestItemsLimit caps the "recent reports" section of the dashboard.
const latestItemsLimit = 10

// dashboard aggregates the authenticated user's view: global counters, the
// user's own reports and the most recent reports across all users.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stats, err := h.services.ItemService.Stats(ctx, userID)
	if err != nil {
		log.Err(err).Msg("dashboard stats failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	mine, err := h.services.ItemService.List(ctx, models.ItemFilter{UserID: &userID})
	if err != nil {
		log.Err(err).Msg("dashboard own items failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	latest, err := h.services.ItemService.List(ctx, models.ItemFilter{Limit: latestItemsLimit})
	if err != nil {
		log.Err(err).Msg("dashboard latest items failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DashboardResponse{
		Stats:  stats,
		Mine:   mine,
		Latest: latest,
	}, http.StatusOK)
}
