package store

import "github.com/elibowlby/christmas-list-app/internal/logger"

// Storages aggregates the server-side repositories behind a single value so
// the service layer can be wired with one constructor call.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
	}
}
