package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPIN            = errors.New("wrong PIN")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrItemNotFound      = errors.New("wishlist item not found")
	ErrCannotMarkOwnItem = errors.New("cannot mark own wishlist item as purchased")
	ErrNotPurchaser      = errors.New("only the purchaser can unmark an item")

	ErrMailDeliveryFailed = errors.New("mail delivery failed")
	ErrPINUpdateFailed    = errors.New("failed to update user PIN")
)
