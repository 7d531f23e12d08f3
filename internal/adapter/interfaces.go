// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the wishlist server and with the outbound email provider.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty, plus the SendGrid
// mailer used by the server side ([NewSendGridMailer]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/elibowlby/christmas-list-app/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the wishlist
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called after a successful Login and when a
	// persisted session is restored.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates the user by name and PIN. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record together with the session token.
	Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)

	// RequestPINReset asks the server to generate a fresh PIN for the named
	// family member and email it to their registered address. Does not require
	// an authenticated session.
	RequestPINReset(ctx context.Context, name string) error

	// GetUsers fetches the household roster. Does not require an authenticated
	// session; the login screen uses it to build the name picker.
	GetUsers(ctx context.Context) ([]models.User, error)

	// GetMyItems fetches the session user's own wishlist.
	GetMyItems(ctx context.Context) ([]models.WishlistItem, error)

	// GetAllItems fetches every wishlist item joined with its owner's name.
	GetAllItems(ctx context.Context) ([]models.WishlistItem, error)

	// AddItem creates a new wishlist item owned by the session user and
	// returns the created record with server-assigned fields.
	AddItem(ctx context.Context, request models.AddItemRequest) (models.WishlistItem, error)

	// EditItem updates the link and/or notes of an item the session user owns.
	EditItem(ctx context.Context, itemID int64, request models.EditItemRequest) error

	// MarkPurchased records the session user as the purchaser of an item.
	MarkPurchased(ctx context.Context, itemID int64) error

	// UnmarkPurchased releases the session user's purchase claim on an item.
	UnmarkPurchased(ctx context.Context, itemID int64) error
}
