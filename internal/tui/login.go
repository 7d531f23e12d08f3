// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/elibowlby/christmas-list-app/models"
)

// loginModel is the state of the login screen: the household roster to pick
// a name from and a masked PIN input. The roster is loaded asynchronously on
// startup; until it arrives the screen shows a loading line.
type loginModel struct {
	roster  []models.User
	idx     int
	pin     textinput.Model
	loading bool

	submitting bool
	errMsg     string
	status     string
}

func newLoginModel() loginModel {
	pinInput := textinput.New()
	pinInput.Placeholder = "PIN"
	pinInput.CharLimit = 6
	pinInput.Width = 10
	pinInput.EchoMode = textinput.EchoPassword
	pinInput.EchoCharacter = '*'
	pinInput.Focus()

	return loginModel{pin: pinInput, loading: true}
}

func (m loginModel) selected() (models.User, bool) {
	if len(m.roster) == 0 || m.idx < 0 || m.idx >= len(m.roster) {
		return models.User{}, false
	}
	return m.roster[m.idx], true
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Family Gift Tracker"))
	b.WriteString("\n\nWho are you?\n\n")

	if m.loading {
		b.WriteString("Loading family members...\n")
	} else if len(m.roster) == 0 {
		b.WriteString("No family members found. Is the server running?\n")
	} else {
		for i, member := range m.roster {
			cursor := "  "
			name := member.Name
			if i == m.idx {
				cursor = "> "
				name = selectedStyle.Render(name)
			}
			b.WriteString(cursor + name + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nPIN: [%s]\n", m.pin.View()))

	if m.submitting {
		b.WriteString("\nSigning in...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ pick name  enter sign in  ctrl+f email me a new PIN  ctrl+c quit"))
	return b.String()
}
