// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	resetPINFn    func(ctx context.Context, name string) error
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) ResetPIN(ctx context.Context, name string) error {
	return m.resetPINFn(ctx, name)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockWishlistService implements service.WishlistService for unit tests.
type mockWishlistService struct {
	getUsersFn         func(ctx context.Context) ([]models.User, error)
	getItemsForOwnerFn func(ctx context.Context, ownerID int64) ([]models.WishlistItem, error)
	getAllItemsFn      func(ctx context.Context) ([]models.WishlistItem, error)
	addItemFn          func(ctx context.Context, ownerID int64, request models.AddItemRequest) (models.WishlistItem, error)
	editItemFn         func(ctx context.Context, itemID, ownerID int64, request models.EditItemRequest) error
	markPurchasedFn    func(ctx context.Context, itemID, purchaserID int64) error
	unmarkPurchasedFn  func(ctx context.Context, itemID, purchaserID int64) error
}

func (m *mockWishlistService) GetUsers(ctx context.Context) ([]models.User, error) {
	return m.getUsersFn(ctx)
}

func (m *mockWishlistService) GetItemsForOwner(ctx context.Context, ownerID int64) ([]models.WishlistItem, error) {
	return m.getItemsForOwnerFn(ctx, ownerID)
}

func (m *mockWishlistService) GetAllItems(ctx context.Context) ([]models.WishlistItem, error) {
	return m.getAllItemsFn(ctx)
}

func (m *mockWishlistService) AddItem(ctx context.Context, ownerID int64, request models.AddItemRequest) (models.WishlistItem, error) {
	return m.addItemFn(ctx, ownerID, request)
}

func (m *mockWishlistService) EditItem(ctx context.Context, itemID, ownerID int64, request models.EditItemRequest) error {
	return m.editItemFn(ctx, itemID, ownerID, request)
}

func (m *mockWishlistService) MarkPurchased(ctx context.Context, itemID, purchaserID int64) error {
	return m.markPurchasedFn(ctx, itemID, purchaserID)
}

func (m *mockWishlistService) UnmarkPurchased(ctx context.Context, itemID, purchaserID int64) error {
	return m.unmarkPurchasedFn(ctx, itemID, purchaserID)
}

// mockDigestService implements service.DigestService for unit tests.
type mockDigestService struct {
	sendDailySummaryFn func(ctx context.Context) (string, error)
	sendRosterFn       func(ctx context.Context, requesterEmail string) (string, error)
}

func (m *mockDigestService) SendDailySummary(ctx context.Context) (string, error) {
	return m.sendDailySummaryFn(ctx)
}

func (m *mockDigestService) SendRosterDigest(ctx context.Context, requesterEmail string) (string, error) {
	return m.sendRosterFn(ctx, requesterEmail)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler from the given mocks. Nil mocks are fine
// as long as the exercised route never touches the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, wishlist service.WishlistService, digest service.DigestService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		WishlistService: wishlist,
		DigestService:   digest,
	}
	return NewHandler(svcs, "test", logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string and user ID.
func stubToken(signed string, userID int64) models.Token {
	return models.Token{SignedString: signed, UserID: userID}
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	UserID: 1,
	Name:   "Eli",
	Email:  "eli@example.com",
}
