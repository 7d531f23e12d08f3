package service

import (
	"github.com/elibowlby/christmas-list-app/internal/config"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/store"
)

type Services struct {
	AuthService     AuthService
	WishlistService WishlistService
	DigestService   DigestService
}

func NewServices(storages *store.Storages, mailer Mailer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, mailer, cfg.App, logger),
		WishlistService: NewWishlistService(storages.UserRepository, storages.ItemRepository, logger),
		DigestService:   NewDigestService(storages.UserRepository, storages.ItemRepository, mailer, logger),
	}
}
