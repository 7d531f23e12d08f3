package store

import (
	"context"
	"time"

	"github.com/elibowlby/christmas-list-app/models"
)

type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	FindUserByName(ctx context.Context, name string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUserPIN(ctx context.Context, userID int64, pin string) error
}

type ItemRepository interface {
	GetItemsByOwner(ctx context.Context, ownerID int64) ([]models.WishlistItem, error)
	GetItemByID(ctx context.Context, itemID int64) (models.WishlistItem, error)
	GetAllItems(ctx context.Context) ([]models.WishlistItem, error)
	GetItemsCreatedSince(ctx context.Context, since time.Time) ([]models.WishlistItem, error)
	CreateItem(ctx context.Context, item models.WishlistItem) (models.WishlistItem, error)
	EditItem(ctx context.Context, itemID, ownerID int64, edit models.EditItemRequest) error
	MarkItemPurchased(ctx context.Context, itemID, purchaserID int64) error
	UnmarkItemPurchased(ctx context.Context, itemID, purchaserID int64) error
}

// SessionStore persists the client's login session and UI preferences
// between runs of the terminal application.
type SessionStore interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	GetSession(ctx context.Context) (models.LocalSession, error)
	DestroySession(ctx context.Context) error
	SaveSelectedMember(ctx context.Context, memberID int64) error
}
