// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the interactive terminal interface: a table of
// accounts with a readiness column, live search, a readiness filter, an
// add form, deletion and CSV export.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Harisproject21/Pendataan-Akun/internal/core"
	"github.com/Harisproject21/Pendataan-Akun/internal/logging"
)

// Options configures the TUI.
type Options struct {
	// ExportDir is where akun_gmail.csv is written.
	ExportDir string
	// Clipboard copies text to the system clipboard. Nil disables copying.
	Clipboard func(string) error
	// Notice is shown in the status line on start, e.g. a load warning.
	Notice string
}

// NewModel returns the root model for session.
func NewModel(session *core.Session, opts Options) tea.Model {
	m := newAccountsModel(session, opts)
	if opts.Notice != "" {
		m.err = fmt.Errorf("%s", opts.Notice)
	}
	return m
}

// Run starts the TUI on the alternate screen and blocks until it exits.
func Run(session *core.Session, opts Options) error {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	// Log lines would tear the alternate screen.
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	if _, err := tea.NewProgram(NewModel(session, opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
