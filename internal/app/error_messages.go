// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// gift tracker server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API,
// and lets the terminal client map response bodies back to business errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidNamePIN is returned when the supplied name/PIN combination
	// does not match any family member. The message never reveals which part
	// was wrong.
	MsgInvalidNamePIN = "invalid name or PIN"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgItemNameRequired is returned when an add-item request omits the
	// item name.
	MsgItemNameRequired = "item name is required"

	// MsgItemNotFound is returned when the referenced wishlist item does not
	// exist or is not visible to the caller for the attempted operation.
	MsgItemNotFound = "item not found"

	// MsgCannotMarkOwnItem is returned when a user tries to claim an item on
	// their own wishlist.
	MsgCannotMarkOwnItem = "cannot mark own item as purchased"

	// MsgNotPurchaser is returned when a user tries to release a purchase
	// claim held by someone else.
	MsgNotPurchaser = "only the purchaser can unmark this item"

	// MsgOnlyPOSTAllowed is returned by the notification endpoints when
	// invoked with any method other than POST.
	MsgOnlyPOSTAllowed = "Only POST allowed"

	// MsgNameRequired is returned by the PIN endpoint when the request body
	// has no name.
	MsgNameRequired = "Name is required"

	// MsgUserNotFound is returned by the PIN endpoint when no family member
	// matches the requested name.
	MsgUserNotFound = "User not found"

	// MsgPINSent is returned by the PIN endpoint after the new PIN has been
	// stored and emailed.
	MsgPINSent = "PIN sent"

	// MsgFailedToUpdatePIN is returned by the PIN endpoint when the fresh PIN
	// cannot be persisted.
	MsgFailedToUpdatePIN = "Failed to update user PIN"

	// MsgFailedToSendEmail is returned by the PIN endpoint when the email
	// provider rejects the message.
	MsgFailedToSendEmail = "Failed to send email"
)
