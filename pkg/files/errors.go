// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
)

// FilesystemError is returned when a directory or file gridgen
// depends on is missing, unreadable or unwritable.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e FilesystemError) Error() string {
	return fmt.Sprintf("%s '%s': %s", e.Op, e.Path, e.Err)
}

func (e FilesystemError) Unwrap() error { return e.Err }
