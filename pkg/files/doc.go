// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files lists example files that feed the gallery and writes the
rendered gallery page back to the filesystem.

Every filesystem failure is reported as a FilesystemError so callers can
tell it apart from rendering problems.
*/
package files
