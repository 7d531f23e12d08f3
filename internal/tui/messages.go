package tui

import (
	"github.com/elibowlby/christmas-list-app/models"
)

type rosterLoadedMsg struct {
	users []models.User
	err   error
}

type loginDoneMsg struct {
	session models.LocalSession
	err     error
}

type pinRequestedMsg struct {
	err error
}

type dashboardLoadedMsg struct {
	roster []models.User
	mine   []models.WishlistItem
	all    []models.WishlistItem
	err    error
}

type itemSavedMsg struct {
	err error
}

type markToggledMsg struct {
	err error
}

type copiedMsg struct {
	member string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
