// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/models"
	"github.com/jackc/pgerrcode"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It manages the "wishlist_items" table and enforces the two ownership rules
// that must never be bypassed: an owner cannot claim their own item, and only
// the recorded purchaser can release one.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// GetItemsByOwner returns all wishlist items belonging to the given family
// member, oldest first. OwnerName is not populated; the caller already knows
// whose list it asked for.
func (r *itemRepository) GetItemsByOwner(ctx context.Context, ownerID int64) ([]models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getItemsByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItemsByOwner").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanItems(rows, false, log, "*itemRepository.GetItemsByOwner")
}

// GetItemByID fetches a single item. Callers use it to classify mark and
// unmark failures before touching the row.
func (r *itemRepository) GetItemByID(ctx context.Context, itemID int64) (models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	var item models.WishlistItem
	row := r.db.QueryRowContext(ctx, getItemByID, itemID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItemByID").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.WishlistItem{}, ErrItemNotFound
		default:
			return models.WishlistItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&item.ItemID, &item.OwnerID, &item.ItemName, &item.ItemLink, &item.ItemNotes, &item.PurchasedBy, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WishlistItem{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.GetItemByID").Msg("error: scanning error")
		return models.WishlistItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// GetAllItems returns every wishlist item in the household joined with its
// owner's name.
func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllItemsWithOwners)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetAllItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanItems(rows, true, log, "*itemRepository.GetAllItems")
}

// GetItemsCreatedSince returns items created at or after the given instant,
// joined with their owners' names. The daily summary worker uses it to build
// its digest window.
func (r *itemRepository) GetItemsCreatedSince(ctx context.Context, since time.Time) ([]models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getItemsCreatedSince, since)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItemsCreatedSince").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanItems(rows, true, log, "*itemRepository.GetItemsCreatedSince")
}

// CreateItem persists a new wishlist item and returns the fully populated
// [models.WishlistItem] with server-assigned fields (ItemID, CreatedAt).
func (r *itemRepository) CreateItem(ctx context.Context, item models.WishlistItem) (models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, item.OwnerID, item.ItemName, item.ItemLink, item.ItemNotes)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.WishlistItem{}, ErrNoUserWasFound
		default:
			return models.WishlistItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.WishlistItem
	if err := row.Scan(&saved.ItemID, &saved.OwnerID, &saved.ItemName, &saved.ItemLink, &saved.ItemNotes, &saved.PurchasedBy, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: scanning error")
		return models.WishlistItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// EditItem updates the link and/or notes of an item. The owner filter in the
// WHERE clause makes the update a no-op for anyone but the item's owner; a
// zero affected row count is reported as [ErrItemNotFound] so non-owners
// cannot probe for item existence.
func (r *itemRepository) EditItem(ctx context.Context, itemID, ownerID int64, edit models.EditItemRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := buildEditItemQuery(itemID, ownerID, edit)
	if err != nil {
		if errors.Is(err, ErrNoFieldsToUpdate) {
			return err
		}
		log.Err(err).Str("func", "*itemRepository.EditItem").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.EditItem").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.EditItem").Msg("error getting affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// MarkItemPurchased records the given user as the purchaser of an item.
// Last writer wins when two family members race to claim the same item.
// The statement filters out the item's own owner; a zero affected row count
// is reported as [ErrOwnershipViolation] and the caller classifies it
// further via [GetItemByID].
func (r *itemRepository) MarkItemPurchased(ctx context.Context, itemID, purchaserID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, markItemPurchased, purchaserID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.MarkItemPurchased").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.MarkItemPurchased").Msg("error getting affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOwnershipViolation
	}

	return nil
}

// UnmarkItemPurchased clears the purchaser of an item, but only when the
// caller is the user currently recorded as that purchaser.
func (r *itemRepository) UnmarkItemPurchased(ctx context.Context, itemID, purchaserID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, unmarkItemPurchased, purchaserID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UnmarkItemPurchased").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UnmarkItemPurchased").Msg("error getting affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOwnershipViolation
	}

	return nil
}

// scanItems drains a result set of wishlist item rows. When withOwner is set
// the query is expected to include the joined owner name column.
func scanItems(rows *sql.Rows, withOwner bool, log *logger.Logger, funcName string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	for rows.Next() {
		var item models.WishlistItem
		var err error
		if withOwner {
			err = rows.Scan(&item.ItemID, &item.OwnerID, &item.OwnerName, &item.ItemName, &item.ItemLink, &item.ItemNotes, &item.PurchasedBy, &item.CreatedAt)
		} else {
			err = rows.Scan(&item.ItemID, &item.OwnerID, &item.ItemName, &item.ItemLink, &item.ItemNotes, &item.PurchasedBy, &item.CreatedAt)
		}
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
