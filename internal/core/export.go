// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"strings"

	"github.com/Harisproject21/Pendataan-Akun/internal/model"
)

const (
	// CSVHeader is the fixed first line of every export.
	CSVHeader = "Name,Email,UsedDate,ReadyDate"
	// ExportFilename is the suggested file name for the export artifact.
	ExportFilename = "akun_gmail.csv"
	// ExportContentType designates the export payload.
	ExportContentType = "text/csv; charset=utf-8"
)

// SerializeCSV renders the full collection as comma-joined lines under
// CSVHeader. Fields are joined verbatim: embedded commas, quotes and
// newlines are not escaped. Lines are separated by "\n" with no trailing
// newline.
func SerializeCSV(accounts []model.Account) string {
	lines := make([]string, 0, len(accounts)+1)
	lines = append(lines, CSVHeader)
	for _, a := range accounts {
		lines = append(lines, strings.Join([]string{a.Name, a.Email, a.UsedDate, a.ReadyDate}, ","))
	}
	return strings.Join(lines, "\n")
}
