// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/elibowlby/christmas-list-app/internal/service"
	"github.com/elibowlby/christmas-list-app/models"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	mode     appMode

	currentScreen screen
	login         loginModel
	dashboard     dashboardModel
	form          formItemModel

	session models.LocalSession
	err     error
	logout  bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenLogin,
		login:         newLoginModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, session models.LocalSession, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeMain,
		currentScreen: screenDashboard,
		dashboard:     newDashboardModel(),
		session:       session,
		buildInfo:     buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadDashboard()
	}
	return m.cmdLoadRoster()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if key.Matches(keyMsg, keys.version) && m.currentScreen == screenDashboard {
			m.showBuildInfo = true
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case rosterLoadedMsg:
		m.login.loading = false
		if msg.err != nil {
			m.login.errMsg = msg.err.Error()
			return m, nil
		}
		m.login.roster = msg.users
		return m, nil

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeLoginError(msg.err)
			m.login.pin.SetValue("")
			return m, nil
		}
		m.session = msg.session
		return m, tea.Quit

	case pinRequestedMsg:
		if msg.err != nil {
			m.login.errMsg = msg.err.Error()
			return m, nil
		}
		m.login.errMsg = ""
		m.login.status = "A new PIN is on its way to your inbox."
		return m, nil

	case dashboardLoadedMsg:
		m.dashboard.loading = false
		if msg.err != nil {
			m.dashboard.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.dashboard.roster = msg.roster
		m.dashboard.mine = msg.mine
		m.dashboard.all = msg.all
		member, ok := service.SelectMember(msg.roster, m.session.UserID, m.session.SelectedMemberID)
		if ok {
			m.dashboard.member = member
		}
		m.clampCursors()
		return m, nil

	case itemSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		m.currentScreen = screenDashboard
		return m, m.cmdLoadDashboard()

	case markToggledMsg:
		if msg.err != nil {
			m.dashboard.status = "Error: " + msg.err.Error()
			return m, cmdClearStatus()
		}
		return m, m.cmdLoadDashboard()

	case copiedMsg:
		m.dashboard.status = fmt.Sprintf("%s's list copied to clipboard!", msg.member)
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.dashboard.status = "Failed to copy."
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.dashboard.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenDashboard:
		body = m.dashboard.View(m.session.UserID)
	case screenForm:
		body = m.form.View()
	}
	return appStyle.Render(body)
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.login.idx > 0 {
				m.login.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.login.idx < len(m.login.roster)-1 {
				m.login.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.forgotPIN):
			member, ok := m.login.selected()
			if !ok {
				return m, nil
			}
			m.login.status = ""
			return m, m.cmdRequestPIN(member.Name)
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			member, ok := m.login.selected()
			if !ok {
				return m, nil
			}
			pin := strings.TrimSpace(m.login.pin.Value())
			if pin == "" {
				m.login.errMsg = "PIN is required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.status = ""
			m.login.submitting = true
			return m, m.cmdLogin(member.Name, pin)
		}
	}

	var cmd tea.Cmd
	m.login.pin, cmd = m.login.pin.Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		if m.dashboard.pane == paneMine {
			m.dashboard.pane = paneFamily
		} else {
			m.dashboard.pane = paneMine
		}
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.pane == paneMine && m.dashboard.mineIdx > 0 {
			m.dashboard.mineIdx--
		}
		if m.dashboard.pane == paneFamily && m.dashboard.famIdx > 0 {
			m.dashboard.famIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.pane == paneMine && m.dashboard.mineIdx < len(m.dashboard.mine)-1 {
			m.dashboard.mineIdx++
		}
		if m.dashboard.pane == paneFamily && m.dashboard.famIdx < len(m.dashboard.familyItems())-1 {
			m.dashboard.famIdx++
		}
	case key.Matches(keyMsg, keys.left):
		return m.switchMember(-1)
	case key.Matches(keyMsg, keys.right):
		return m.switchMember(+1)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormItemModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		item, ok := m.dashboard.currentMine()
		if !ok || m.dashboard.pane != paneMine {
			return m, nil
		}
		m.form = newFormItemModel(&item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.enter):
		if m.dashboard.pane != paneFamily {
			return m, nil
		}
		item, ok := m.dashboard.currentFamily()
		if !ok {
			return m, nil
		}
		return m.toggleMark(item)
	case key.Matches(keyMsg, keys.copyList):
		items := m.dashboard.familyItems()
		if len(items) == 0 {
			m.dashboard.status = fmt.Sprintf("%s has no items to copy.", m.dashboard.member.Name)
			return m, cmdClearStatus()
		}
		return m, m.cmdCopyList(m.dashboard.member.Name, items)
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.status = ""
		return m, m.cmdLoadDashboard()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDashboard
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if m.form.editing {
				m.form.submitting = true
				return m, m.cmdEditItem(m.form.itemID, m.form.toEditRequest())
			}
			request := m.form.toAddRequest()
			if request.ItemName == "" {
				m.form.errMsg = "item name is required"
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdAddItem(request)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// switchMember moves the family pane to the adjacent member and persists the
// choice so the next launch opens on the same pane.
func (m appModel) switchMember(step int) (tea.Model, tea.Cmd) {
	member, ok := m.dashboard.cycleMember(m.session.UserID, step)
	if !ok {
		return m, nil
	}
	m.dashboard.member = member
	m.dashboard.famIdx = 0
	m.session.SelectedMemberID = member.UserID
	return m, m.cmdRememberMember(member.UserID)
}

// toggleMark claims an unclaimed item or releases the viewer's own claim.
// Items claimed by someone else stay untouched.
func (m appModel) toggleMark(item models.WishlistItem) (tea.Model, tea.Cmd) {
	if item.PurchasedBy == nil {
		return m, m.cmdMark(item.ItemID)
	}
	if service.CanUnmark(item, m.session.UserID) {
		return m, m.cmdUnmark(item.ItemID)
	}
	m.dashboard.status = "Someone else is already gifting this."
	return m, cmdClearStatus()
}

func (m *appModel) clampCursors() {
	if m.dashboard.mineIdx >= len(m.dashboard.mine) {
		m.dashboard.mineIdx = len(m.dashboard.mine) - 1
	}
	if m.dashboard.mineIdx < 0 {
		m.dashboard.mineIdx = 0
	}
	family := m.dashboard.familyItems()
	if m.dashboard.famIdx >= len(family) {
		m.dashboard.famIdx = len(family) - 1
	}
	if m.dashboard.famIdx < 0 {
		m.dashboard.famIdx = 0
	}
}

func (m appModel) cmdLoadRoster() tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService
	return func() tea.Msg {
		users, err := svc.Roster(ctx)
		return rosterLoadedMsg{users: users, err: err}
	}
}

func (m appModel) cmdLogin(name, pin string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, name, pin)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdRequestPIN(name string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return pinRequestedMsg{err: auth.RequestPINReset(ctx, name)}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService
	return func() tea.Msg {
		roster, err := svc.Roster(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		mine, err := svc.MyItems(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		all, err := svc.AllItems(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{roster: roster, mine: mine, all: all}
	}
}

func (m appModel) cmdRememberMember(memberID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService
	return func() tea.Msg {
		// Best effort: losing the preference only affects the next launch.
		_ = svc.RememberSelectedMember(ctx, memberID)
		return nil
	}
}

func (m appModel) cmdAddItem(request models.AddItemRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService
	return func() tea.Msg {
		_, err := svc.AddItem(ctx, request)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdEditItem(itemID int64, request models.EditItemRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService
	return func() tea.Msg {
		return itemSavedMsg{err: svc.EditItem(ctx, itemID, request)}
	}
}

func (m appModel) cmdMark(itemID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService
	return func() tea.Msg {
		return markToggledMsg{err: svc.MarkPurchased(ctx, itemID)}
	}
}

func (m appModel) cmdUnmark(itemID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.WishlistService
	return func() tea.Msg {
		return markToggledMsg{err: svc.UnmarkPurchased(ctx, itemID)}
	}
}

func (m appModel) cmdCopyList(memberName string, items []models.WishlistItem) tea.Cmd {
	viewerID := m.session.UserID
	return func() tea.Msg {
		text := service.FormatMemberList(memberName, items, viewerID)
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{member: memberName}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextForm(m formItemModel) formItemModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m formItemModel) formItemModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
