// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/models"
)

type pane int

const (
	paneMine pane = iota
	paneFamily
)

// dashboardModel is the state of the main screen: the viewer's own wishlist
// on the left and one family member's wishlist on the right. left/right
// cycles through the other members; the selection is persisted so the next
// launch opens on the same member.
type dashboardModel struct {
	roster []models.User
	mine   []models.WishlistItem
	all    []models.WishlistItem

	member  models.User
	pane    pane
	mineIdx int
	famIdx  int

	loading bool
	status  string
}

func newDashboardModel() dashboardModel {
	return dashboardModel{loading: true}
}

// familyItems returns the selected member's wishlist.
func (m dashboardModel) familyItems() []models.WishlistItem {
	return service.ItemsForMember(m.all, m.member.Name)
}

func (m dashboardModel) currentMine() (models.WishlistItem, bool) {
	if len(m.mine) == 0 || m.mineIdx < 0 || m.mineIdx >= len(m.mine) {
		return models.WishlistItem{}, false
	}
	return m.mine[m.mineIdx], true
}

func (m dashboardModel) currentFamily() (models.WishlistItem, bool) {
	items := m.familyItems()
	if len(items) == 0 || m.famIdx < 0 || m.famIdx >= len(items) {
		return models.WishlistItem{}, false
	}
	return items[m.famIdx], true
}

// cycleMember moves the family pane to the next or previous member,
// skipping the viewer.
func (m dashboardModel) cycleMember(viewerID int64, step int) (models.User, bool) {
	others := service.OtherMembers(m.roster, viewerID)
	if len(others) == 0 {
		return models.User{}, false
	}

	current := 0
	for i, member := range others {
		if member.UserID == m.member.UserID {
			current = i
			break
		}
	}

	next := (current + step + len(others)) % len(others)
	return others[next], true
}

func (m dashboardModel) viewMine() string {
	var b strings.Builder
	title := "My Wishlist"
	if m.pane == paneMine {
		title = selectedStyle.Render(title)
	}
	b.WriteString(title + "\n\n")

	if len(m.mine) == 0 {
		b.WriteString("Nothing yet. Press n to add your first idea.\n")
		return b.String()
	}

	for i, item := range m.mine {
		cursor := "  "
		if m.pane == paneMine && i == m.mineIdx {
			cursor = "> "
		}
		b.WriteString(cursor + item.ItemName + "\n")
		if item.ItemLink != nil && *item.ItemLink != "" {
			b.WriteString("     " + helpStyle.Render(*item.ItemLink) + "\n")
		}
		if item.ItemNotes != nil && *item.ItemNotes != "" {
			b.WriteString("     " + helpStyle.Render(*item.ItemNotes) + "\n")
		}
	}
	return b.String()
}

func (m dashboardModel) viewFamily(viewerID int64) string {
	var b strings.Builder
	title := fmt.Sprintf("%s's Wishlist", m.member.Name)
	if m.pane == paneFamily {
		title = selectedStyle.Render(title)
	}
	b.WriteString("◀ " + title + " ▶\n\n")

	items := m.familyItems()
	if len(items) == 0 {
		b.WriteString(fmt.Sprintf("%s has no items yet.\n", m.member.Name))
		return b.String()
	}

	for i, item := range items {
		cursor := "  "
		if m.pane == paneFamily && i == m.famIdx {
			cursor = "> "
		}
		line := item.ItemName
		if service.IsPurchasedVisible(item, viewerID) {
			line = purchasedStyle.Render(line) + " (being gifted)"
		}
		b.WriteString(cursor + line + "\n")
		if item.ItemLink != nil && *item.ItemLink != "" {
			b.WriteString("     " + helpStyle.Render(*item.ItemLink) + "\n")
		}
	}
	return b.String()
}

func (m dashboardModel) View(viewerID int64) string {
	if m.loading {
		return titleStyle.Render("Family Gift Tracker") + "\n\nLoading...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Family Gift Tracker"))
	b.WriteString("\n\n")
	b.WriteString(m.viewMine())
	b.WriteString("\n")
	b.WriteString(m.viewFamily(viewerID))

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	help := "tab switch pane  ←/→ member  n new  e edit  enter gift/ungift  c copy list  r refresh  ctrl+l sign out  ctrl+c quit"
	b.WriteString("\n" + helpStyle.Render(help))
	return b.String()
}
