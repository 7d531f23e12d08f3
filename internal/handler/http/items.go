// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/elibowlby/christmas-list-app/internal/app"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/internal/utils"
	"github.com/elibowlby/christmas-list-app/models"
)

func (h *Handler) getMyItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	items, err := h.services.WishlistService.GetItemsForOwner(ctx, userID)
	if err != nil {
		log.Err(err).Msg("fetching own items failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getAllItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.WishlistService.GetAllItems(ctx)
	if err != nil {
		log.Err(err).Msg("fetching all items failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var request models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.WishlistService.AddItem(ctx, userID, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("item name is missing")
			http.Error(w, app.MsgItemNameRequired, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("item creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) editItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	itemID, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid item ID")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var request models.EditItemRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err = h.services.WishlistService.EditItem(ctx, itemID, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("no editable fields provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrItemNotFound):
			log.Err(err).Int64("itemID", itemID).Msg("item not found or not owned")
			http.Error(w, app.MsgItemNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("item edit failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) markPurchased(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	itemID, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid item ID")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err = h.services.WishlistService.MarkPurchased(ctx, itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCannotMarkOwnItem):
			log.Err(err).Int64("itemID", itemID).Msg("owner tried to mark own item")
			http.Error(w, app.MsgCannotMarkOwnItem, http.StatusForbidden)
			return
		case errors.Is(err, service.ErrItemNotFound):
			log.Err(err).Int64("itemID", itemID).Msg("item not found")
			http.Error(w, app.MsgItemNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("marking item failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) unmarkPurchased(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	itemID, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid item ID")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err = h.services.WishlistService.UnmarkPurchased(ctx, itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotPurchaser):
			log.Err(err).Int64("itemID", itemID).Msg("caller is not the purchaser")
			http.Error(w, app.MsgNotPurchaser, http.StatusForbidden)
			return
		case errors.Is(err, service.ErrItemNotFound):
			log.Err(err).Int64("itemID", itemID).Msg("item not found")
			http.Error(w, app.MsgItemNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unmarking item failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func itemIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
}
