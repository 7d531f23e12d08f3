package http

import (
	"net/http"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/utils"
)

// getUsers returns the household roster. Unauthenticated: the login screen
// needs the names before a session exists. PINs never leave the server; the
// User model excludes them from JSON.
func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.WishlistService.GetUsers(ctx)
	if err != nil {
		log.Err(err).Msg("fetching users failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
