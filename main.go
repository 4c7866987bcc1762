// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Pendataan Akun.
//
// Usage:
//
//	go run . [flags]
//	./pendataan-akun [command] [flags]
//
// Without a command the interactive TUI starts. See --help for options.
package main

import (
	"os"

	"github.com/Harisproject21/Pendataan-Akun/internal/logging"
	"github.com/Harisproject21/Pendataan-Akun/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
