package models

import "time"

// WishlistItem is a single gift idea on a member's wishlist.
//
// Purchase status is stored as the purchaser's user ID but is never shown to
// the item's owner: visibility is computed per viewer, not persisted. See
// the visibility helpers in internal/service.
type WishlistItem struct {
	// ItemID is the unique identifier of the item in the database.
	ItemID int64 `json:"id"`

	// OwnerID is the user the item belongs to. Immutable after creation.
	OwnerID int64 `json:"owner_id"`

	// OwnerName is the owner's display name, populated only by queries that
	// join the owning user into the item row.
	OwnerName string `json:"owner_name,omitempty"`

	// ItemName is the gift description. Required and immutable after
	// creation.
	ItemName string `json:"item_name"`

	// ItemLink is an optional URL for the item. Mutable by the owner.
	ItemLink *string `json:"item_link,omitempty"`

	// ItemNotes holds optional free-form notes. Mutable by the owner.
	ItemNotes *string `json:"item_notes,omitempty"`

	// PurchasedBy is the ID of the user who claimed the item, or nil while
	// unclaimed. Set by any non-owner, cleared only by the purchaser.
	PurchasedBy *int64 `json:"purchased_by,omitempty"`

	// CreatedAt is the timestamp when the item was added. The daily digest
	// selects on this column.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the WishlistItem model.
func (i *WishlistItem) TableName() string {
	return "wishlist_items"
}

// IsOwnedBy reports whether the item belongs to the given user.
func (i *WishlistItem) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}

// IsPurchasedBy reports whether the given user is the recorded purchaser.
func (i *WishlistItem) IsPurchasedBy(userID int64) bool {
	return i.PurchasedBy != nil && *i.PurchasedBy == userID
}
