// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/Harisproject21/Pendataan-Akun/internal/logging"

func dbLogf(format string, v ...any) {
	logging.Debugf("db: "+format, v...)
}
