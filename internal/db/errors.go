// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "errors"

// ErrUnsupportedStorage is returned by NewPort for an unknown storage type.
var ErrUnsupportedStorage = errors.New("unsupported storage type")
