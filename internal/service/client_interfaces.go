package service

import (
	"context"

	"github.com/elibowlby/christmas-list-app/models"
)

// ClientAuthService defines the client-side contract for session lifecycle:
// logging in, restoring a persisted session on startup, and logging out.
type ClientAuthService interface {
	// Login authenticates against the server with name and PIN, persists the
	// resulting session locally, and primes the adapter with the bearer token.
	Login(ctx context.Context, name, pin string) (models.LocalSession, error)

	// RestoreSession loads the persisted session, if any, and primes the
	// adapter with its token. Returns store.ErrNoSavedSession when the user
	// has never logged in or has logged out.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// Logout destroys the persisted session and clears the adapter token.
	Logout(ctx context.Context) error

	// RequestPINReset asks the server to email a fresh PIN to the named
	// family member.
	RequestPINReset(ctx context.Context, name string) error
}

// ClientWishlistService defines the client-side contract for wishlist data.
// Every mutation is followed by a re-fetch on the caller's side; the service
// itself performs single round trips.
type ClientWishlistService interface {
	Roster(ctx context.Context) ([]models.User, error)
	MyItems(ctx context.Context) ([]models.WishlistItem, error)
	AllItems(ctx context.Context) ([]models.WishlistItem, error)
	AddItem(ctx context.Context, request models.AddItemRequest) (models.WishlistItem, error)
	EditItem(ctx context.Context, itemID int64, request models.EditItemRequest) error
	MarkPurchased(ctx context.Context, itemID int64) error
	UnmarkPurchased(ctx context.Context, itemID int64) error

	// RememberSelectedMember persists which family member's wishlist the
	// dashboard pane is showing.
	RememberSelectedMember(ctx context.Context, memberID int64) error
}
