// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Harisproject21/Pendataan-Akun/internal/core"
	"github.com/Harisproject21/Pendataan-Akun/internal/export"
	"github.com/Harisproject21/Pendataan-Akun/internal/i18n"
	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

// dayChangedMsg is delivered at local midnight, when readiness may change.
type dayChangedMsg struct{}

// exportDoneMsg reports the outcome of a CSV export.
type exportDoneMsg struct {
	path  string
	count int
	err   error
}

type accountsViewState int

const (
	accountsListView accountsViewState = iota
	accountsFormView
	accountsSearchView
	accountsConfirmDeleteView
)

// accountsModel is the single screen of the TUI: the account table with
// its search box, filter and the add form.
type accountsModel struct {
	session *core.Session
	opts    Options

	state   accountsViewState
	table   table.Model
	form    accountFormModel
	search  textinput.Model
	help    help.Model
	keys    keyMap
	visible []model.Account

	status          string
	err             error
	accountToDelete model.Account
	width, height   int
}

func newAccountsModel(session *core.Session, opts Options) accountsModel {
	columns := []table.Column{
		{Title: i18n.T("col.name"), Width: 20},
		{Title: i18n.T("col.email"), Width: 30},
		{Title: i18n.T("col.used_date"), Width: 16},
		{Title: i18n.T("col.ready_date"), Width: 16},
		{Title: i18n.T("col.status"), Width: 14},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Prompt = i18n.T("search.label")
	search.Placeholder = i18n.T("search.placeholder")
	search.CharLimit = 64
	search.SetValue(session.Search())

	m := accountsModel{
		session: session,
		opts:    opts,
		table:   t,
		search:  search,
		help:    help.New(),
		keys:    newKeyMap(),
	}
	m.rebuildDisplayedAccounts()
	return m
}

func (m accountsModel) Init() tea.Cmd {
	return m.scheduleDayChange()
}

// untilNextMidnight returns the time left until the next local midnight
// in now's location.
func untilNextMidnight(now time.Time) time.Duration {
	y, mo, d := now.Date()
	return time.Date(y, mo, d+1, 0, 0, 0, 0, now.Location()).Sub(now)
}

func (m accountsModel) scheduleDayChange() tea.Cmd {
	return tea.Tick(untilNextMidnight(m.session.Now()), func(time.Time) tea.Msg {
		return dayChangedMsg{}
	})
}

// rebuildDisplayedAccounts recomputes the visible rows from the session.
func (m *accountsModel) rebuildDisplayedAccounts() {
	m.visible = m.session.Visible()

	rows := make([]table.Row, 0, len(m.visible))
	for _, a := range m.visible {
		rows = append(rows, table.Row{a.Name, a.Email, a.UsedDate, a.ReadyDate, m.statusCell(a)})
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) || c < 0 {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// statusCell is plain text: the table measures and truncates cells by
// width, so escape sequences must stay out of it.
func (m accountsModel) statusCell(a model.Account) string {
	if m.session.IsReady(a) {
		return "✓ " + i18n.T("status.ready")
	}
	return "✗ " + i18n.T("status.not_ready")
}

// selectedStatusView renders the readiness of the row under the cursor in
// green or red below the table.
func (m accountsModel) selectedStatusView() string {
	acc, ok := m.selected()
	if !ok {
		return ""
	}
	line := fmt.Sprintf("%s  %s", acc.String(), m.statusCell(acc))
	if m.session.IsReady(acc) {
		return readyStyle.Render(line)
	}
	return notReadyStyle.Render(line)
}

// selected returns the account under the table cursor.
func (m accountsModel) selected() (model.Account, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return model.Account{}, false
	}
	return m.visible[i], true
}

func (m accountsModel) exportCmd() tea.Cmd {
	dir := m.opts.ExportDir
	payload := m.session.ExportCSV()
	count := m.session.Store().Len()
	return func() tea.Msg {
		path, err := export.ToDir(dir, payload)
		return exportDoneMsg{path: path, count: count, err: err}
	}
}

func (m accountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-12, 3))
		m.table.SetWidth(msg.Width - 4)
		m.help.Width = msg.Width
		return m, nil

	case accountAddedMsg:
		m.state = accountsListView
		m.err = nil
		m.status = i18n.T("msg.added", msg.account.Email, msg.account.ReadyDate)
		m.rebuildDisplayedAccounts()
		return m, nil

	case backToListMsg:
		m.state = accountsListView
		return m, nil

	case dayChangedMsg:
		m.rebuildDisplayedAccounts()
		return m, m.scheduleDayChange()

	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = i18n.T("msg.exported", msg.count, msg.path)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case accountsFormView:
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		case accountsSearchView:
			return m.updateSearch(msg)
		case accountsConfirmDeleteView:
			return m.updateConfirmDelete(msg)
		}
		return m.updateList(msg)
	}

	if m.state == accountsFormView {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m accountsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.state = accountsFormView
		m.form = newAccountFormModel(m.session)
		m.status, m.err = "", nil
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Search):
		m.state = accountsSearchView
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.session.CycleFilterMode()
		m.rebuildDisplayedAccounts()
		m.table.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if acc, ok := m.selected(); ok {
			m.accountToDelete = acc
			m.state = accountsConfirmDeleteView
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.Copy):
		acc, ok := m.selected()
		if !ok || m.opts.Clipboard == nil {
			return m, nil
		}
		if err := m.opts.Clipboard(acc.Email); err != nil {
			m.err = fmt.Errorf("%s", i18n.T("msg.copy_failed", err))
			return m, nil
		}
		m.err = nil
		m.status = i18n.T("msg.copied", acc.Email)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m accountsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.SetValue("")
		m.search.Blur()
		m.session.SetSearch("")
		m.state = accountsListView
		m.rebuildDisplayedAccounts()
		return m, nil
	case tea.KeyEnter:
		m.search.Blur()
		m.state = accountsListView
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.session.SetSearch(m.search.Value())
	m.rebuildDisplayedAccounts()
	m.table.GotoTop()
	return m, cmd
}

func (m accountsModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		acc := m.accountToDelete
		m.state = accountsListView
		err := m.session.DeleteAccount(context.Background(), acc.ID)
		if err != nil && !errors.Is(err, core.ErrNotFound) {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = i18n.T("msg.deleted", acc.Email)
		m.rebuildDisplayedAccounts()
	case "n", "esc", "q":
		m.state = accountsListView
	}
	return m, nil
}

func (m accountsModel) headerView() string {
	mode := i18n.T("filter." + string(m.session.FilterMode()))
	info := fmt.Sprintf("%s  •  %s",
		i18n.T("filter.label", mode),
		i18n.T("msg.count", len(m.visible), m.session.Store().Len()))

	search := m.search.View()
	if m.state != accountsSearchView {
		search = helpStyle.Render(i18n.T("search.label") + m.session.Search())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(i18n.T("app.title")),
		search,
		helpStyle.Render(info),
	)
}

func (m accountsModel) View() string {
	if m.state == accountsFormView {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch {
	case m.session.Store().Len() == 0:
		b.WriteString(helpStyle.Render(i18n.T("msg.empty")))
	case len(m.visible) == 0:
		b.WriteString(helpStyle.Render(i18n.T("msg.no_match")))
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(m.selectedStatusView())
	}
	b.WriteString("\n\n")

	if m.state == accountsConfirmDeleteView {
		b.WriteString(dialogBoxStyle.Render(specialStyle.Render(
			i18n.T("msg.confirm_delete", m.accountToDelete.String()))))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(i18n.T("error.prefix", m.err)))
	case m.status != "":
		b.WriteString(statusMessageStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}
