package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/elibowlby/christmas-list-app/internal/adapter"
	"github.com/elibowlby/christmas-list-app/internal/app"
	"github.com/elibowlby/christmas-list-app/internal/mock"
	"github.com/elibowlby/christmas-list-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientAddItem_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	request := models.AddItemRequest{ItemName: "Socks"}
	mockAdapter.EXPECT().
		AddItem(ctx, request).
		Return(models.WishlistItem{ItemID: 3, OwnerID: 1, ItemName: "Socks"}, nil)

	svc := NewClientWishlistService(&stubSessionStore{}, mockAdapter)
	item, err := svc.AddItem(ctx, request)

	require.NoError(t, err)
	assert.Equal(t, int64(3), item.ItemID)
}

func TestClientAddItem_EmptyName(t *testing.T) {
	svc := NewClientWishlistService(&stubSessionStore{}, nil)

	_, err := svc.AddItem(context.Background(), models.AddItemRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientEditItem_RequiresAField(t *testing.T) {
	svc := NewClientWishlistService(&stubSessionStore{}, nil)

	err := svc.EditItem(context.Background(), 1, models.EditItemRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientMarkPurchased_MapsForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	mockAdapter.EXPECT().
		MarkPurchased(ctx, int64(5)).
		Return(fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgCannotMarkOwnItem))

	svc := NewClientWishlistService(&stubSessionStore{}, mockAdapter)
	err := svc.MarkPurchased(ctx, 5)

	assert.ErrorIs(t, err, ErrCannotMarkOwnItem)
}

func TestClientUnmarkPurchased_MapsForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	mockAdapter.EXPECT().
		UnmarkPurchased(ctx, int64(5)).
		Return(fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgNotPurchaser))

	svc := NewClientWishlistService(&stubSessionStore{}, mockAdapter)
	err := svc.UnmarkPurchased(ctx, 5)

	assert.ErrorIs(t, err, ErrNotPurchaser)
}

func TestClientAllItems_MapsExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	mockAdapter.EXPECT().
		GetAllItems(ctx).
		Return(nil, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid))

	svc := NewClientWishlistService(&stubSessionStore{}, mockAdapter)
	_, err := svc.AllItems(ctx)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestRememberSelectedMember_Persists(t *testing.T) {
	sessions := &stubSessionStore{session: &models.LocalSession{UserID: 1}}
	svc := NewClientWishlistService(sessions, nil)

	require.NoError(t, svc.RememberSelectedMember(context.Background(), 4))
	assert.Equal(t, int64(4), sessions.session.SelectedMemberID)
}
