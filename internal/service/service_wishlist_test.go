package service

import (
	"context"
	"testing"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWishlistService(users *mockUserRepository, items *mockItemRepository) WishlistService {
	return NewWishlistService(users, items, logger.Nop())
}

func TestAddItem_Success(t *testing.T) {
	items := &mockItemRepository{
		createFn: func(ctx context.Context, item models.WishlistItem) (models.WishlistItem, error) {
			item.ItemID = 7
			return item, nil
		},
	}
	svc := newTestWishlistService(&mockUserRepository{}, items)

	link := "https://example.com/socks"
	created, err := svc.AddItem(context.Background(), 1, models.AddItemRequest{ItemName: "Socks", ItemLink: &link})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ItemID)
	assert.Equal(t, int64(1), created.OwnerID)
	assert.Nil(t, created.PurchasedBy)
}

func TestAddItem_EmptyName(t *testing.T) {
	svc := newTestWishlistService(&mockUserRepository{}, &mockItemRepository{})

	_, err := svc.AddItem(context.Background(), 1, models.AddItemRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestEditItem_MapsStoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{name: "no fields", storeErr: store.ErrNoFieldsToUpdate, wantErr: ErrInvalidDataProvided},
		{name: "not owner or missing", storeErr: store.ErrItemNotFound, wantErr: ErrItemNotFound},
	}

	notes := "blue"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := &mockItemRepository{
				editFn: func(ctx context.Context, itemID, ownerID int64, edit models.EditItemRequest) error {
					return tt.storeErr
				},
			}
			svc := newTestWishlistService(&mockUserRepository{}, items)

			err := svc.EditItem(context.Background(), 1, 1, models.EditItemRequest{ItemNotes: &notes})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMarkPurchased_Success(t *testing.T) {
	items := &mockItemRepository{}
	svc := newTestWishlistService(&mockUserRepository{}, items)

	err := svc.MarkPurchased(context.Background(), 1, 2)
	assert.NoError(t, err)
}

func TestMarkPurchased_OwnItem(t *testing.T) {
	items := &mockItemRepository{
		markFn: func(ctx context.Context, itemID, purchaserID int64) error {
			return store.ErrOwnershipViolation
		},
		getByIDFn: func(ctx context.Context, itemID int64) (models.WishlistItem, error) {
			return models.WishlistItem{ItemID: itemID, OwnerID: 2}, nil
		},
	}
	svc := newTestWishlistService(&mockUserRepository{}, items)

	err := svc.MarkPurchased(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrCannotMarkOwnItem)
}

func TestMarkPurchased_ItemMissing(t *testing.T) {
	items := &mockItemRepository{
		markFn: func(ctx context.Context, itemID, purchaserID int64) error {
			return store.ErrOwnershipViolation
		},
		getByIDFn: func(ctx context.Context, itemID int64) (models.WishlistItem, error) {
			return models.WishlistItem{}, store.ErrItemNotFound
		},
	}
	svc := newTestWishlistService(&mockUserRepository{}, items)

	err := svc.MarkPurchased(context.Background(), 99, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUnmarkPurchased_NotPurchaser(t *testing.T) {
	otherUser := int64(3)
	items := &mockItemRepository{
		unmarkFn: func(ctx context.Context, itemID, purchaserID int64) error {
			return store.ErrOwnershipViolation
		},
		getByIDFn: func(ctx context.Context, itemID int64) (models.WishlistItem, error) {
			return models.WishlistItem{ItemID: itemID, OwnerID: 1, PurchasedBy: &otherUser}, nil
		},
	}
	svc := newTestWishlistService(&mockUserRepository{}, items)

	err := svc.UnmarkPurchased(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotPurchaser)
}

func TestUnmarkPurchased_Success(t *testing.T) {
	svc := newTestWishlistService(&mockUserRepository{}, &mockItemRepository{})

	err := svc.UnmarkPurchased(context.Background(), 1, 2)
	assert.NoError(t, err)
}

func TestMarkUnmark_TwoUserScenario(t *testing.T) {
	// One shared item, mutated through the mock closures so the service sees
	// the state each call leaves behind.
	item := models.WishlistItem{ItemID: 5, OwnerID: 1, ItemName: "Train set"}
	items := &mockItemRepository{
		markFn: func(ctx context.Context, itemID, purchaserID int64) error {
			if item.OwnerID == purchaserID {
				return store.ErrOwnershipViolation
			}
			item.PurchasedBy = &purchaserID
			return nil
		},
		unmarkFn: func(ctx context.Context, itemID, purchaserID int64) error {
			if !item.IsPurchasedBy(purchaserID) {
				return store.ErrOwnershipViolation
			}
			item.PurchasedBy = nil
			return nil
		},
		getByIDFn: func(ctx context.Context, itemID int64) (models.WishlistItem, error) {
			return item, nil
		},
		getAllFn: func(ctx context.Context) ([]models.WishlistItem, error) {
			return []models.WishlistItem{item}, nil
		},
	}
	svc := newTestWishlistService(&mockUserRepository{}, items)
	ctx := context.Background()

	// User 2 claims user 1's item.
	require.NoError(t, svc.MarkPurchased(ctx, 5, 2))

	all, err := svc.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].PurchasedBy)
	assert.Equal(t, int64(2), *all[0].PurchasedBy)

	// User 3 holds no claim and cannot release it.
	assert.ErrorIs(t, svc.UnmarkPurchased(ctx, 5, 3), ErrNotPurchaser)

	// User 2 releases their own claim.
	require.NoError(t, svc.UnmarkPurchased(ctx, 5, 2))

	all, err = svc.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Nil(t, all[0].PurchasedBy)
}

func TestGetUsers_PropagatesUsers(t *testing.T) {
	users := &mockUserRepository{
		getAllFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{UserID: 1, Name: "Alice"}, {UserID: 2, Name: "Bob"}}, nil
		},
	}
	svc := newTestWishlistService(users, &mockItemRepository{})

	roster, err := svc.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}
