// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/Harisproject21/Pendataan-Akun/internal/i18n"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
	Search key.Binding
	Filter key.Binding
	Export key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Add, km.Delete, km.Search, km.Filter, km.Export, km.Copy, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down},
		{km.Add, km.Delete, km.Copy},
		{km.Search, km.Filter, km.Export},
		{km.Quit},
	}
}

var _ help.KeyMap = keyMap{}

// newKeyMap builds the list bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", i18n.T("help.up"))),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", i18n.T("help.down"))),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", i18n.T("help.add"))),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", i18n.T("help.delete"))),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", i18n.T("help.search"))),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", i18n.T("help.filter"))),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", i18n.T("help.export"))),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", i18n.T("help.copy"))),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", i18n.T("help.quit"))),
	}
}
