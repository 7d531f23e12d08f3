package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	// Name is the selected display name.
	Name string `json:"name"`

	// PIN is the credential entered by the user.
	PIN string `json:"pin"`
}

// AddItemRequest is the body of POST /api/items. The owner is always taken
// from the session, never from the body.
type AddItemRequest struct {
	// ItemName is required; the request is rejected when it is blank.
	ItemName string `json:"item_name"`

	// ItemLink is an optional URL for the item.
	ItemLink *string `json:"item_link,omitempty"`

	// ItemNotes holds optional free-form notes.
	ItemNotes *string `json:"item_notes,omitempty"`
}

// EditItemRequest is the body of PATCH /api/items/{id}. Only the link and
// the notes are mutable post-creation; a nil field leaves the stored value
// untouched.
type EditItemRequest struct {
	ItemLink  *string `json:"item_link,omitempty"`
	ItemNotes *string `json:"item_notes,omitempty"`
}

// PINResetRequest is the body of POST /api/notify/pin.
type PINResetRequest struct {
	// Name identifies the account whose PIN is regenerated and mailed.
	Name string `json:"name"`
}

// RosterDigestRequest is the body of POST /api/notify/roster.
type RosterDigestRequest struct {
	// RequesterEmail identifies the caller. The matching user row is looked
	// up for logging but the identity is not enforced before sending.
	RequesterEmail string `json:"requesterEmail"`
}
