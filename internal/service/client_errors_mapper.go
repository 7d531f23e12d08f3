// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"strings"

	"github.com/elibowlby/christmas-list-app/internal/adapter"
	"github.com/elibowlby/christmas-list-app/internal/app"
	"github.com/elibowlby/christmas-list-app/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgItemNameRequired, app.MsgNameRequired:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidNamePIN:
			return ErrWrongPIN
		default:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgCannotMarkOwnItem:
			return ErrCannotMarkOwnItem
		case app.MsgNotPurchaser:
			return ErrNotPurchaser
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUserNotFound {
			return store.ErrNoUserWasFound
		}
		return ErrItemNotFound
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
