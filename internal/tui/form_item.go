// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/elibowlby/christmas-list-app/models"
)

// formItemModel is the state of the add/edit item form. When editing, the
// item name is shown read-only: only the link and the notes can change
// after creation.
type formItemModel struct {
	inputs []textinput.Model
	focus  int

	editing  bool
	itemID   int64
	itemName string

	submitting bool
	errMsg     string
}

func newFormItemModel(item *models.WishlistItem) formItemModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "what would you like?"
	nameInput.CharLimit = 200
	nameInput.Width = 40

	linkInput := textinput.New()
	linkInput.Placeholder = "https:// (optional)"
	linkInput.CharLimit = 500
	linkInput.Width = 40

	notesInput := textinput.New()
	notesInput.Placeholder = "size, colour, ... (optional)"
	notesInput.CharLimit = 500
	notesInput.Width = 40

	m := formItemModel{}
	if item == nil {
		nameInput.Focus()
		m.inputs = []textinput.Model{nameInput, linkInput, notesInput}
		return m
	}

	m.editing = true
	m.itemID = item.ItemID
	m.itemName = item.ItemName
	if item.ItemLink != nil {
		linkInput.SetValue(*item.ItemLink)
	}
	if item.ItemNotes != nil {
		notesInput.SetValue(*item.ItemNotes)
	}
	linkInput.Focus()
	m.inputs = []textinput.Model{linkInput, notesInput}
	return m
}

// toAddRequest builds the create payload. Blank optional fields stay nil.
func (m formItemModel) toAddRequest() models.AddItemRequest {
	request := models.AddItemRequest{ItemName: strings.TrimSpace(m.inputs[0].Value())}
	if link := strings.TrimSpace(m.inputs[1].Value()); link != "" {
		request.ItemLink = &link
	}
	if notes := strings.TrimSpace(m.inputs[2].Value()); notes != "" {
		request.ItemNotes = &notes
	}
	return request
}

// toEditRequest builds the update payload. Both fields are always sent so
// that clearing an input clears the stored value.
func (m formItemModel) toEditRequest() models.EditItemRequest {
	link := strings.TrimSpace(m.inputs[0].Value())
	notes := strings.TrimSpace(m.inputs[1].Value())
	return models.EditItemRequest{ItemLink: &link, ItemNotes: &notes}
}

func (m formItemModel) View() string {
	var b strings.Builder
	if m.editing {
		b.WriteString(titleStyle.Render("Edit: " + m.itemName))
		b.WriteString("\n\nLink  │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\nNotes │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	} else {
		b.WriteString(titleStyle.Render("New gift idea"))
		b.WriteString("\n\nItem  │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\nLink  │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\nNotes │ [")
		b.WriteString(m.inputs[2].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("tab next field  enter save  esc cancel"))
	return b.String()
}
