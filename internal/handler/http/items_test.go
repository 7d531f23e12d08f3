// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/models"
)

// serveItems routes the request through the full router so chi URL params
// are populated for the {itemID} routes.
func serveItems(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// itemsHandler builds a Handler whose auth middleware accepts the fixed
// token "good-token" as user 1.
func itemsHandler(t *testing.T, wishlist service.WishlistService) *Handler {
	t.Helper()
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return stubToken(tokenString, 1), nil
		},
	}
	return newTestHandler(t, auth, wishlist, nil)
}

func withAuthHeader(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer good-token")
	return req
}

// ─────────────────────────────────────────────
// GET /api/items and /api/items/my
// ─────────────────────────────────────────────

func TestGetMyItems_ReturnsOwnItems(t *testing.T) {
	wishlist := &mockWishlistService{
		getItemsForOwnerFn: func(_ context.Context, ownerID int64) ([]models.WishlistItem, error) {
			require.Equal(t, int64(1), ownerID)
			return []models.WishlistItem{{ItemID: 7, OwnerID: 1, ItemName: "wool socks"}}, nil
		},
	}

	h := itemsHandler(t, wishlist)
	req := withAuthHeader(httptest.NewRequest(http.MethodGet, "/api/items/my", nil))
	rec := serveItems(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wool socks")
}

func TestGetAllItems_ReturnsEveryItem(t *testing.T) {
	purchaser := int64(2)
	wishlist := &mockWishlistService{
		getAllItemsFn: func(_ context.Context) ([]models.WishlistItem, error) {
			return []models.WishlistItem{
				{ItemID: 1, OwnerID: 1, OwnerName: "Eli", ItemName: "wool socks"},
				{ItemID: 2, OwnerID: 3, OwnerName: "Mara", ItemName: "chess set", PurchasedBy: &purchaser},
			}, nil
		},
	}

	h := itemsHandler(t, wishlist)
	req := withAuthHeader(httptest.NewRequest(http.MethodGet, "/api/items", nil))
	rec := serveItems(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chess set")
	assert.Contains(t, rec.Body.String(), `"purchased_by":2`)
}

func TestGetAllItems_RequiresToken(t *testing.T) {
	h := itemsHandler(t, &mockWishlistService{})
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/items
// ─────────────────────────────────────────────

func TestAddItem_Success(t *testing.T) {
	wishlist := &mockWishlistService{
		addItemFn: func(_ context.Context, ownerID int64, request models.AddItemRequest) (models.WishlistItem, error) {
			require.Equal(t, int64(1), ownerID)
			return models.WishlistItem{ItemID: 11, OwnerID: ownerID, ItemName: request.ItemName}, nil
		},
	}

	h := itemsHandler(t, wishlist)
	body := jsonBody(t, models.AddItemRequest{ItemName: "book"})
	req := withAuthHeader(httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(body)))
	rec := serveItems(t, h, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":11`)
}

func TestAddItem_EmptyName(t *testing.T) {
	wishlist := &mockWishlistService{
		addItemFn: func(_ context.Context, _ int64, _ models.AddItemRequest) (models.WishlistItem, error) {
			return models.WishlistItem{}, service.ErrInvalidDataProvided
		},
	}

	h := itemsHandler(t, wishlist)
	body := jsonBody(t, models.AddItemRequest{})
	req := withAuthHeader(httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(body)))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "item name is required")
}

// ─────────────────────────────────────────────
// PATCH /api/items/{itemID}
// ─────────────────────────────────────────────

func TestEditItem_Success(t *testing.T) {
	link := "https://example.com/socks"
	wishlist := &mockWishlistService{
		editItemFn: func(_ context.Context, itemID, ownerID int64, request models.EditItemRequest) error {
			require.Equal(t, int64(7), itemID)
			require.Equal(t, int64(1), ownerID)
			require.NotNil(t, request.ItemLink)
			return nil
		},
	}

	h := itemsHandler(t, wishlist)
	body := jsonBody(t, models.EditItemRequest{ItemLink: &link})
	req := withAuthHeader(httptest.NewRequest(http.MethodPatch, "/api/items/7", strings.NewReader(body)))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEditItem_NotOwned(t *testing.T) {
	wishlist := &mockWishlistService{
		editItemFn: func(_ context.Context, _, _ int64, _ models.EditItemRequest) error {
			return service.ErrItemNotFound
		},
	}

	h := itemsHandler(t, wishlist)
	body := jsonBody(t, models.EditItemRequest{ItemNotes: ptr("size L")})
	req := withAuthHeader(httptest.NewRequest(http.MethodPatch, "/api/items/99", strings.NewReader(body)))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditItem_BadItemID(t *testing.T) {
	h := itemsHandler(t, &mockWishlistService{})
	req := withAuthHeader(httptest.NewRequest(http.MethodPatch, "/api/items/not-a-number", strings.NewReader("{}")))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// purchase marking
// ─────────────────────────────────────────────

func TestMarkPurchased_Success(t *testing.T) {
	wishlist := &mockWishlistService{
		markPurchasedFn: func(_ context.Context, itemID, purchaserID int64) error {
			require.Equal(t, int64(5), itemID)
			require.Equal(t, int64(1), purchaserID)
			return nil
		},
	}

	h := itemsHandler(t, wishlist)
	req := withAuthHeader(httptest.NewRequest(http.MethodPost, "/api/items/5/purchase", nil))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarkPurchased_OwnItem(t *testing.T) {
	wishlist := &mockWishlistService{
		markPurchasedFn: func(_ context.Context, _, _ int64) error {
			return service.ErrCannotMarkOwnItem
		},
	}

	h := itemsHandler(t, wishlist)
	req := withAuthHeader(httptest.NewRequest(http.MethodPost, "/api/items/5/purchase", nil))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot mark own item")
}

func TestUnmarkPurchased_NotPurchaser(t *testing.T) {
	wishlist := &mockWishlistService{
		unmarkPurchasedFn: func(_ context.Context, _, _ int64) error {
			return service.ErrNotPurchaser
		},
	}

	h := itemsHandler(t, wishlist)
	req := withAuthHeader(httptest.NewRequest(http.MethodDelete, "/api/items/5/purchase", nil))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "only the purchaser")
}

func TestUnmarkPurchased_ItemMissing(t *testing.T) {
	wishlist := &mockWishlistService{
		unmarkPurchasedFn: func(_ context.Context, _, _ int64) error {
			return service.ErrItemNotFound
		},
	}

	h := itemsHandler(t, wishlist)
	req := withAuthHeader(httptest.NewRequest(http.MethodDelete, "/api/items/404/purchase", nil))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkPurchased_StorageError(t *testing.T) {
	wishlist := &mockWishlistService{
		markPurchasedFn: func(_ context.Context, _, _ int64) error {
			return errors.New("connection reset")
		},
	}

	h := itemsHandler(t, wishlist)
	req := withAuthHeader(httptest.NewRequest(http.MethodPost, "/api/items/5/purchase", nil))
	rec := serveItems(t, h, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func ptr(s string) *string { return &s }
