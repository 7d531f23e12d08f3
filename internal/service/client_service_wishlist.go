// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/elibowlby/christmas-list-app/internal/adapter"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/models"
)

type clientWishlistService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
}

func NewClientWishlistService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter) ClientWishlistService {
	return &clientWishlistService{sessions: sessions, adapter: serverAdapter}
}

func (s *clientWishlistService) Roster(ctx context.Context) ([]models.User, error) {
	users, err := s.adapter.GetUsers(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return users, nil
}

func (s *clientWishlistService) MyItems(ctx context.Context) ([]models.WishlistItem, error) {
	items, err := s.adapter.GetMyItems(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return items, nil
}

func (s *clientWishlistService) AllItems(ctx context.Context) ([]models.WishlistItem, error) {
	items, err := s.adapter.GetAllItems(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return items, nil
}

func (s *clientWishlistService) AddItem(ctx context.Context, request models.AddItemRequest) (models.WishlistItem, error) {
	if request.ItemName == "" {
		return models.WishlistItem{}, ErrInvalidDataProvided
	}

	item, err := s.adapter.AddItem(ctx, request)
	if err != nil {
		return models.WishlistItem{}, mapAdapterError(err)
	}
	return item, nil
}

func (s *clientWishlistService) EditItem(ctx context.Context, itemID int64, request models.EditItemRequest) error {
	if request.ItemLink == nil && request.ItemNotes == nil {
		return ErrInvalidDataProvided
	}

	if err := s.adapter.EditItem(ctx, itemID, request); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientWishlistService) MarkPurchased(ctx context.Context, itemID int64) error {
	if err := s.adapter.MarkPurchased(ctx, itemID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientWishlistService) UnmarkPurchased(ctx context.Context, itemID int64) error {
	if err := s.adapter.UnmarkPurchased(ctx, itemID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientWishlistService) RememberSelectedMember(ctx context.Context, memberID int64) error {
	if err := s.sessions.SaveSelectedMember(ctx, memberID); err != nil {
		return fmt.Errorf("remembering selected member: %w", err)
	}
	return nil
}
