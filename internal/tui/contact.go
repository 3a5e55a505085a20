package tui

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
)

type contactForm struct {
	inputs []textinput.Model
	index  int
	err    string
}

func newFormInput(prompt string, limit int) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = limit
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func newContactForm(s content.Contact, width int) (*contactForm, tea.Cmd) {
	f := &contactForm{
		inputs: []textinput.Model{
			newFormInput(s.Name+": ", 80),
			newFormInput(s.Email+": ", 120),
			newFormInput(s.Message+": ", 1000),
		},
	}
	inner := modalInnerWidth(width)
	for i := range f.inputs {
		f.inputs[i].Width = max(inner-len([]rune(f.inputs[i].Prompt))-1, 5)
	}
	return f, f.setIndex(fieldName)
}

func (f *contactForm) setIndex(idx int) tea.Cmd {
	count := len(f.inputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	f.index = idx
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.index {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// message validates the inputs and builds the submission.
func (f *contactForm) message(lang string) (model.Message, error) {
	name := strings.TrimSpace(f.inputs[fieldName].Value())
	email := strings.TrimSpace(f.inputs[fieldEmail].Value())
	body := strings.TrimSpace(f.inputs[fieldMessage].Value())
	if name == "" {
		return model.Message{}, fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.Message{}, fmt.Errorf("invalid email address")
	}
	if body == "" {
		return model.Message{}, fmt.Errorf("message is required")
	}
	return model.Message{Name: name, Email: email, Body: body, Lang: lang}, nil
}

func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.index], cmd = f.inputs[f.index].Update(msg)
	return cmd
}

func (f *contactForm) view(s content.Contact, st styles, width int) string {
	body := []string{st.title.Render(s.Title), ""}
	for i := range f.inputs {
		body = append(body, f.inputs[i].View())
	}
	body = append(body, "", st.muted.Render("Tab next / Enter "+strings.ToLower(s.Submit)+" / Esc cancel"))
	if f.err != "" {
		body = append(body, st.errText.Render(f.err))
	}
	return st.modal.Width(modalWidth(width)).Render(strings.Join(body, "\n"))
}
