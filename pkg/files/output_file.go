// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/natefinch/atomic"
)

// StdoutPath selects standard output instead of a file
const StdoutPath = "-"

type OutputFile struct {
	path string
	data []byte
}

func NewOutputFile(path string, data []byte) OutputFile {
	return OutputFile{path, data}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }

// Create truncates (or creates) the file and writes all data into it.
// Parent directory is expected to exist already.
func (f OutputFile) Create() (err error) {
	fd, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return FilesystemError{Op: "Creating output file", Path: f.path, Err: err}
	}

	defer func() {
		closeErr := fd.Close()
		if err == nil && closeErr != nil {
			err = FilesystemError{Op: "Closing output file", Path: f.path, Err: closeErr}
		}
	}()

	_, err = fd.Write(f.data)
	if err != nil {
		return FilesystemError{Op: "Writing output file", Path: f.path, Err: err}
	}
	return nil
}

// CreateAtomic writes data into a temporary file next to the destination
// and renames it into place, so a failure leaves previous contents intact.
func (f OutputFile) CreateAtomic() error {
	err := atomic.WriteFile(f.path, bytes.NewReader(f.data))
	if err != nil {
		return FilesystemError{Op: "Writing output file", Path: f.path, Err: err}
	}
	return nil
}

// WriteTo writes data to w (used when output path is StdoutPath)
func (f OutputFile) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.data)
	return int64(n), err
}

// Existing returns current contents of the destination; found is false
// when the file does not exist yet.
func (f OutputFile) Existing() (data []byte, found bool, err error) {
	data, err = os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, FilesystemError{Op: "Reading output file", Path: f.path, Err: err}
	}
	return data, true, nil
}
