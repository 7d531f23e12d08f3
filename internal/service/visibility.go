// SPDX-License-Identifier: Apache-2.0

package service

import (
	"fmt"
	"strings"

	"github.com/elibowlby/christmas-list-app/models"
)

// The functions in this file implement the purchase-visibility rules shared
// by every presentation surface. The core rule: an item's purchase status is
// visible to everyone EXCEPT the item's owner, so wishlist owners never learn
// which of their wishes have already been bought.

// IsPurchasedVisible reports whether the given viewer should see the item as
// already purchased. The item's owner always sees false regardless of the
// actual purchase state.
func IsPurchasedVisible(item models.WishlistItem, viewerID int64) bool {
	return item.PurchasedBy != nil && !item.IsOwnedBy(viewerID)
}

// CanUnmark reports whether the viewer holds the purchase claim on the item
// and may therefore release it.
func CanUnmark(item models.WishlistItem, viewerID int64) bool {
	return item.IsPurchasedBy(viewerID)
}

// ItemsForMember filters the joined item set down to one owner by name,
// preserving order.
func ItemsForMember(items []models.WishlistItem, ownerName string) []models.WishlistItem {
	filtered := make([]models.WishlistItem, 0, len(items))
	for _, item := range items {
		if item.OwnerName == ownerName {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// OtherMembers returns the roster without the viewer, preserving order.
// The family pane cycles through this slice.
func OtherMembers(users []models.User, viewerID int64) []models.User {
	others := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.UserID != viewerID {
			others = append(others, u)
		}
	}
	return others
}

// SelectMember picks the roster entry to show in the family pane. It prefers
// the previously selected member; when that member is gone from the roster
// (or nothing was selected yet) it falls back to the first other member.
// Returns false when the viewer is the only registered user.
func SelectMember(users []models.User, viewerID, selectedID int64) (models.User, bool) {
	others := OtherMembers(users, viewerID)
	if len(others) == 0 {
		return models.User{}, false
	}

	for _, u := range others {
		if u.UserID == selectedID {
			return u, true
		}
	}
	return others[0], true
}

// FormatMemberList renders a family member's wishlist as shareable plain
// text, the form placed on the clipboard by the copy action.
func FormatMemberList(memberName string, items []models.WishlistItem, viewerID int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎄 %s's Wishlist 🎁\n\n", memberName)

	entries := make([]string, 0, len(items))
	for i, item := range items {
		suffix := ""
		if IsPurchasedVisible(item, viewerID) {
			suffix = " (Already being gifted by someone)"
		}
		entries = append(entries, fmt.Sprintf("%d. %s%s\n   Link: %s\n   Notes: %s\n",
			i+1, item.ItemName, suffix, orNA(item.ItemLink), orNA(item.ItemNotes)))
	}

	b.WriteString(strings.Join(entries, "\n"))
	return b.String()
}

func orNA(field *string) string {
	if field == nil || *field == "" {
		return "N/A"
	}
	return *field
}
