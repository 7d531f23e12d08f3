package models

import "time"

// LocalSession is the client-side record of a logged-in user. It is stored
// in the local database so that restarting the terminal application does not
// require a new login. SelectedMemberID remembers whose wishlist the family
// pane was last showing; zero means no member has been picked yet.
type LocalSession struct {
	UserID           int64
	UserName         string
	Token            string
	SelectedMemberID int64
	CreatedAt        time.Time
}
