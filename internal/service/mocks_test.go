package service

import (
	"context"
	"time"

	"github.com/elibowlby/christmas-list-app/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	getAllFn      func(ctx context.Context) ([]models.User, error)
	findByNameFn  func(ctx context.Context, name string) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	updatePINFn   func(ctx context.Context, userID int64, pin string) error
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUserPIN(ctx context.Context, userID int64, pin string) error {
	if m.updatePINFn != nil {
		return m.updatePINFn(ctx, userID, pin)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ItemRepository
// ─────────────────────────────────────────────

type mockItemRepository struct {
	getByOwnerFn func(ctx context.Context, ownerID int64) ([]models.WishlistItem, error)
	getByIDFn    func(ctx context.Context, itemID int64) (models.WishlistItem, error)
	getAllFn     func(ctx context.Context) ([]models.WishlistItem, error)
	getSinceFn   func(ctx context.Context, since time.Time) ([]models.WishlistItem, error)
	createFn     func(ctx context.Context, item models.WishlistItem) (models.WishlistItem, error)
	editFn       func(ctx context.Context, itemID, ownerID int64, edit models.EditItemRequest) error
	markFn       func(ctx context.Context, itemID, purchaserID int64) error
	unmarkFn     func(ctx context.Context, itemID, purchaserID int64) error
}

func (m *mockItemRepository) GetItemsByOwner(ctx context.Context, ownerID int64) ([]models.WishlistItem, error) {
	if m.getByOwnerFn != nil {
		return m.getByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockItemRepository) GetItemByID(ctx context.Context, itemID int64) (models.WishlistItem, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, itemID)
	}
	return models.WishlistItem{}, nil
}

func (m *mockItemRepository) GetAllItems(ctx context.Context) ([]models.WishlistItem, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockItemRepository) GetItemsCreatedSince(ctx context.Context, since time.Time) ([]models.WishlistItem, error) {
	if m.getSinceFn != nil {
		return m.getSinceFn(ctx, since)
	}
	return nil, nil
}

func (m *mockItemRepository) CreateItem(ctx context.Context, item models.WishlistItem) (models.WishlistItem, error) {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepository) EditItem(ctx context.Context, itemID, ownerID int64, edit models.EditItemRequest) error {
	if m.editFn != nil {
		return m.editFn(ctx, itemID, ownerID, edit)
	}
	return nil
}

func (m *mockItemRepository) MarkItemPurchased(ctx context.Context, itemID, purchaserID int64) error {
	if m.markFn != nil {
		return m.markFn(ctx, itemID, purchaserID)
	}
	return nil
}

func (m *mockItemRepository) UnmarkItemPurchased(ctx context.Context, itemID, purchaserID int64) error {
	if m.unmarkFn != nil {
		return m.unmarkFn(ctx, itemID, purchaserID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: Mailer
// ─────────────────────────────────────────────

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockMailer struct {
	sendFn func(ctx context.Context, toEmail, subject, htmlBody string) error
	sent   []sentMail
}

func (m *mockMailer) Send(ctx context.Context, toEmail, subject, htmlBody string) error {
	m.sent = append(m.sent, sentMail{to: toEmail, subject: subject, body: htmlBody})
	if m.sendFn != nil {
		return m.sendFn(ctx, toEmail, subject, htmlBody)
	}
	return nil
}
