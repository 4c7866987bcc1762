// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Harisproject21/Pendataan-Akun/internal/core"
	"github.com/Harisproject21/Pendataan-Akun/internal/i18n"
	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// accountAddedMsg signals that the form stored a new account.
type accountAddedMsg struct {
	account model.Account
}

// backToListMsg signals that the form was dismissed.
type backToListMsg struct{}

const (
	inputName = iota
	inputEmail
	inputUsedDate
	inputCount
)

type accountFormModel struct {
	session    *core.Session
	focusIndex int // inputCount is the submit button
	inputs     []textinput.Model
	err        error
}

func newAccountFormModel(session *core.Session) accountFormModel {
	m := accountFormModel{
		session: session,
		inputs:  make([]textinput.Model, inputCount),
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 128
		t.Width = 40

		switch i {
		case inputName:
			t.Prompt = fmt.Sprintf("%-18s", i18n.T("form.name")+":")
			t.Placeholder = i18n.T("form.name.placeholder")
		case inputEmail:
			t.Prompt = fmt.Sprintf("%-18s", i18n.T("form.email")+":")
			t.Placeholder = i18n.T("form.email.placeholder")
		case inputUsedDate:
			t.Prompt = fmt.Sprintf("%-18s", i18n.T("form.used_date")+":")
			t.Placeholder = i18n.T("form.used_date.placeholder")
			t.CharLimit = len(model.DateLayout)
		}
		m.inputs[i] = t
	}
	m.inputs[inputName].Focus()
	m.inputs[inputName].TextStyle = focusedStyle
	return m
}

func (m accountFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// submit stores the account. Values are passed exactly as typed.
func (m accountFormModel) submit() (accountFormModel, tea.Cmd) {
	acc, err := m.session.AddAccount(context.Background(),
		m.inputs[inputName].Value(),
		m.inputs[inputEmail].Value(),
		m.inputs[inputUsedDate].Value(),
	)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.reset()
	return m, func() tea.Msg { return accountAddedMsg{account: acc} }
}

// reset clears every field and moves focus back to the first one.
func (m *accountFormModel) reset() {
	m.err = nil
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(inputName)
}

func (m *accountFormModel) setFocus(idx int) tea.Cmd {
	m.focusIndex = idx
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == idx {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].TextStyle = lipgloss.NewStyle()
	}
	return tea.Batch(cmds...)
}

func (m accountFormModel) Update(msg tea.Msg) (accountFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch s := msg.String(); s {
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }

		case "ctrl+s":
			return m.submit()

		case "tab", "shift+tab", "enter", "up", "down":
			if s == "enter" && m.focusIndex == inputCount {
				return m.submit()
			}
			next := m.focusIndex
			if s == "up" || s == "shift+tab" {
				next--
			} else {
				next++
			}
			if next > inputCount {
				next = 0
			} else if next < 0 {
				next = inputCount
			}
			return m, m.setFocus(next)
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m accountFormModel) View() string {
	items := []string{titleStyle.Render(i18n.T("form.title")), ""}
	for i := range m.inputs {
		items = append(items, m.inputs[i].View())
	}

	label := "[ " + i18n.T("help.submit") + " ]"
	button := formItemStyle.Render(label)
	if m.focusIndex == inputCount {
		button = formSelectedItemStyle.Render(label)
	}
	items = append(items, "", button)

	if m.err != nil {
		items = append(items, "", errorStyle.Render(i18n.T("error.prefix", m.err)))
	}
	items = append(items, "", helpStyle.Render(fmt.Sprintf("tab: %s • enter: %s • esc: %s",
		i18n.T("help.next_field"), i18n.T("help.submit"), i18n.T("help.back"))))

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}
