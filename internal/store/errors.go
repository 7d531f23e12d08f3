package store

import "errors"

var (
	ErrNoUserWasFound     = errors.New("no user was found")
	ErrNameAlreadyExists  = errors.New("user with given name already exists")
	ErrItemNotFound       = errors.New("wishlist item not found")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrOwnershipViolation = errors.New("operation not permitted for this user")

	ErrExecutingQuery     = errors.New("error executing query")
	ErrExecutingStatement = errors.New("error executing statement")
	ErrScanningRow        = errors.New("error scanning row")
	ErrScanningRows       = errors.New("error scanning rows")
	ErrBuildingQuery      = errors.New("error building query")
	ErrBeginTransaction   = errors.New("error beginning transaction")

	ErrOpeningLocalDB  = errors.New("error opening local database file")
	ErrCreatingLocalDB = errors.New("error creating local database file")
	ErrNoSavedSession  = errors.New("no saved session")
)
