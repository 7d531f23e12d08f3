package service

import (
	"context"

	"github.com/elibowlby/christmas-list-app/models"
)

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	ResetPIN(ctx context.Context, name string) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type WishlistService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetItemsForOwner(ctx context.Context, ownerID int64) ([]models.WishlistItem, error)
	GetAllItems(ctx context.Context) ([]models.WishlistItem, error)
	AddItem(ctx context.Context, ownerID int64, request models.AddItemRequest) (models.WishlistItem, error)
	EditItem(ctx context.Context, itemID, ownerID int64, request models.EditItemRequest) error
	MarkPurchased(ctx context.Context, itemID, purchaserID int64) error
	UnmarkPurchased(ctx context.Context, itemID, purchaserID int64) error
}

type DigestService interface {
	SendDailySummary(ctx context.Context) (string, error)
	SendRosterDigest(ctx context.Context, requesterEmail string) (string, error)
}

// Mailer delivers a single HTML email to one recipient. The SendGrid adapter
// is the production implementation.
type Mailer interface {
	Send(ctx context.Context, toEmail, subject, htmlBody string) error
}
