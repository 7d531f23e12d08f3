// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/store"
	"github.com/elibowlby/christmas-list-app/models"
)

// wishlistService is the concrete implementation of WishlistService.
// It owns the business rules around wishlist items: who may edit, who may
// claim, and who may release a claim.
type wishlistService struct {
	userRepository store.UserRepository
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewWishlistService constructs a WishlistService backed by the given
// repositories.
func NewWishlistService(userRepository store.UserRepository, itemRepository store.ItemRepository, logger *logger.Logger) WishlistService {
	return &wishlistService{
		userRepository: userRepository,
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// GetUsers returns the household roster.
func (s *wishlistService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching users failed: %w", err)
	}
	return users, nil
}

// GetItemsForOwner returns all wishlist items of one family member.
// Purchase details stay in the payload; hiding them from the owner is the
// presentation layer's job, since the same data serves both the owner's own
// list and everyone else's view of it.
func (s *wishlistService) GetItemsForOwner(ctx context.Context, ownerID int64) ([]models.WishlistItem, error) {
	items, err := s.itemRepository.GetItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("fetching items for owner failed: %w", err)
	}
	return items, nil
}

// GetAllItems returns every wishlist item in the household with owner names
// attached.
func (s *wishlistService) GetAllItems(ctx context.Context) ([]models.WishlistItem, error) {
	items, err := s.itemRepository.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching all items failed: %w", err)
	}
	return items, nil
}

// AddItem creates a new wishlist item owned by the given user.
//
// Returns ErrInvalidDataProvided if the item name is empty.
func (s *wishlistService) AddItem(ctx context.Context, ownerID int64, request models.AddItemRequest) (models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	if request.ItemName == "" {
		log.Error().Int64("ownerID", ownerID).Msg("empty item name provided")
		return models.WishlistItem{}, ErrInvalidDataProvided
	}

	item := models.WishlistItem{
		OwnerID:   ownerID,
		ItemName:  request.ItemName,
		ItemLink:  request.ItemLink,
		ItemNotes: request.ItemNotes,
	}

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Int64("ownerID", ownerID).Msg("item creation ended with error")
		return models.WishlistItem{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return created, nil
}

// EditItem updates the link and/or notes of an item the given user owns.
//
// Returns:
//   - ErrInvalidDataProvided when neither field is set.
//   - ErrItemNotFound when the item does not exist or belongs to someone else.
func (s *wishlistService) EditItem(ctx context.Context, itemID, ownerID int64, request models.EditItemRequest) error {
	log := logger.FromContext(ctx)

	err := s.itemRepository.EditItem(ctx, itemID, ownerID, request)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoFieldsToUpdate):
		return ErrInvalidDataProvided
	case errors.Is(err, store.ErrItemNotFound):
		return ErrItemNotFound
	default:
		log.Err(err).Int64("itemID", itemID).Msg("item edit ended with error")
		return fmt.Errorf("item edit ended with error: %w", err)
	}
}

// MarkPurchased records the given user as the purchaser of an item.
// Claiming an already claimed item silently takes it over; last writer wins.
//
// Returns:
//   - ErrItemNotFound when the item does not exist.
//   - ErrCannotMarkOwnItem when the user owns the item.
func (s *wishlistService) MarkPurchased(ctx context.Context, itemID, purchaserID int64) error {
	log := logger.FromContext(ctx)

	err := s.itemRepository.MarkItemPurchased(ctx, itemID, purchaserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrOwnershipViolation) {
		log.Err(err).Int64("itemID", itemID).Msg("marking item purchased ended with error")
		return fmt.Errorf("marking item purchased ended with error: %w", err)
	}

	return s.classifyMarkFailure(ctx, itemID, purchaserID, true)
}

// UnmarkPurchased clears the purchase mark the given user previously set.
//
// Returns:
//   - ErrItemNotFound when the item does not exist.
//   - ErrNotPurchaser when someone else holds the claim (or nobody does).
func (s *wishlistService) UnmarkPurchased(ctx context.Context, itemID, purchaserID int64) error {
	log := logger.FromContext(ctx)

	err := s.itemRepository.UnmarkItemPurchased(ctx, itemID, purchaserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrOwnershipViolation) {
		log.Err(err).Int64("itemID", itemID).Msg("unmarking item purchased ended with error")
		return fmt.Errorf("unmarking item purchased ended with error: %w", err)
	}

	return s.classifyMarkFailure(ctx, itemID, purchaserID, false)
}

// classifyMarkFailure turns a guarded zero-row update into a precise error
// by re-reading the item.
func (s *wishlistService) classifyMarkFailure(ctx context.Context, itemID, userID int64, marking bool) error {
	item, err := s.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("classifying item state failed: %w", err)
	}

	if marking && item.IsOwnedBy(userID) {
		return ErrCannotMarkOwnItem
	}
	if !marking && !item.IsPurchasedBy(userID) {
		return ErrNotPurchaser
	}

	// The guard fired but the re-read shows an allowed state; the row changed
	// between the two statements. Report the closest sentinel.
	if marking {
		return ErrItemNotFound
	}
	return ErrNotPurchaser
}
