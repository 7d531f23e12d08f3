// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/elibowlby/christmas-list-app/models"
)

const (
	getAllUsers = `SELECT user_id, name, email, pin, created_at
    FROM users
    ORDER BY user_id;`

	findUserByName = `SELECT user_id, name, email, pin, created_at
    FROM users
    WHERE name = $1;`

	findUserByEmail = `SELECT user_id, name, email, pin, created_at
    FROM users
    WHERE email = $1;`

	updateUserPIN = `UPDATE users
    SET pin = $1
    WHERE user_id = $2;`

	getItemsByOwner = `SELECT item_id, owner_id, item_name, item_link, item_notes, purchased_by, created_at
    FROM wishlist_items
    WHERE owner_id = $1
    ORDER BY item_id;`

	getItemByID = `SELECT item_id, owner_id, item_name, item_link, item_notes, purchased_by, created_at
    FROM wishlist_items
    WHERE item_id = $1;`

	getAllItemsWithOwners = `SELECT i.item_id, i.owner_id, u.name, i.item_name, i.item_link, i.item_notes, i.purchased_by, i.created_at
    FROM wishlist_items i
    JOIN users u ON u.user_id = i.owner_id
    ORDER BY i.item_id;`

	getItemsCreatedSince = `SELECT i.item_id, i.owner_id, u.name, i.item_name, i.item_link, i.item_notes, i.purchased_by, i.created_at
    FROM wishlist_items i
    JOIN users u ON u.user_id = i.owner_id
    WHERE i.created_at >= $1
    ORDER BY i.item_id;`

	createItem = `INSERT INTO wishlist_items (owner_id, item_name, item_link, item_notes)
    VALUES ($1, $2, $3, $4)
    RETURNING item_id, owner_id, item_name, item_link, item_notes, purchased_by, created_at;`

	// The WHERE guards enforce ownership rules at the data boundary:
	// an owner can never claim their own item, and only the recorded
	// purchaser can release one. Zero affected rows means the guard fired.
	markItemPurchased = `UPDATE wishlist_items
    SET purchased_by = $1
    WHERE item_id = $2 AND owner_id <> $1;`

	unmarkItemPurchased = `UPDATE wishlist_items
    SET purchased_by = NULL
    WHERE item_id = $2 AND purchased_by = $1;`
)

// buildEditItemQuery assembles the dynamic UPDATE for the owner-editable
// fields. Only the link and the notes may appear in the SET clause; the name
// and the owner are immutable after creation.
func buildEditItemQuery(itemID, ownerID int64, edit models.EditItemRequest) (string, []any, error) {
	builder := sq.Update("wishlist_items").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"item_id": itemID, "owner_id": ownerID})

	hasChanges := false
	if edit.ItemLink != nil {
		builder = builder.Set("item_link", *edit.ItemLink)
		hasChanges = true
	}
	if edit.ItemNotes != nil {
		builder = builder.Set("item_notes", *edit.ItemNotes)
		hasChanges = true
	}

	if !hasChanges {
		return "", nil, ErrNoFieldsToUpdate
	}

	return builder.ToSql()
}
