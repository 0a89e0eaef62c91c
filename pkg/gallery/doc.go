// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package gallery discovers example files and turns their names into gallery
entries.

Entries are always sorted by slug at discovery time; nothing downstream
re-orders them.
*/
package gallery
