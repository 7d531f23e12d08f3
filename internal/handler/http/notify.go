// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elibowlby/christmas-list-app/internal/app"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/internal/utils"
	"github.com/elibowlby/christmas-list-app/models"
)

// requestPIN resets a member's PIN and mails the new one.
// The notification endpoints accept any method and answer non-POST with 405,
// so browser clients get a JSON body instead of chi's empty 405.
func (h *Handler) requestPIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		utils.WriteJSON(w, models.APIError{Error: app.MsgOnlyPOSTAllowed}, http.StatusMethodNotAllowed)
		return
	}

	var request models.PINResetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Name == "" {
		utils.WriteJSON(w, models.APIError{Error: app.MsgNameRequired}, http.StatusBadRequest)
		return
	}

	err := h.services.AuthService.ResetPIN(ctx, request.Name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Str("name", request.Name).Msg("PIN reset for unknown member")
			utils.WriteJSON(w, models.APIError{Error: app.MsgUserNotFound}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrPINUpdateFailed):
			log.Err(err).Msg("PIN update failed")
			utils.WriteJSON(w, models.APIError{Error: app.MsgFailedToUpdatePIN}, http.StatusInternalServerError)
			return
		case errors.Is(err, service.ErrMailDeliveryFailed):
			log.Err(err).Msg("PIN email delivery failed")
			utils.WriteJSON(w, models.APIError{Error: app.MsgFailedToSendEmail}, http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("PIN reset failed")
			utils.WriteJSON(w, models.APIError{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.APIMessage{Message: app.MsgPINSent}, http.StatusOK)
}

func (h *Handler) sendDailySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		utils.WriteJSON(w, models.APIError{Error: app.MsgOnlyPOSTAllowed}, http.StatusMethodNotAllowed)
		return
	}

	message, err := h.services.DigestService.SendDailySummary(ctx)
	if err != nil {
		log.Err(err).Msg("daily summary failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, message)
}

func (h *Handler) sendRosterDigest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		utils.WriteJSON(w, models.APIError{Error: app.MsgOnlyPOSTAllowed}, http.StatusMethodNotAllowed)
		return
	}

	var request models.RosterDigestRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	message, err := h.services.DigestService.SendRosterDigest(ctx, request.RequesterEmail)
	if err != nil {
		log.Err(err).Msg("roster digest failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, message)
}
