// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface using Cobra. It loads
// the configuration, opens the configured persistence port and hands a
// core.Session to each command. Commands stay thin: validation, readiness
// and filtering all live in internal/core.
package cli
