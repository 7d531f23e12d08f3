package service

import (
	"github.com/elibowlby/christmas-list-app/internal/adapter"
	"github.com/elibowlby/christmas-list-app/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	WishlistService ClientWishlistService
}

func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(sessions, serverAdapter),
		WishlistService: NewClientWishlistService(sessions, serverAdapter),
	}
}
