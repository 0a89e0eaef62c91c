// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package gallery

import (
	"sort"
	"strings"
	"unicode"

	"github.com/visgl/gridgen/pkg/files"
)

// Entry is a single example shown in the gallery grid
type Entry struct {
	// Slug is the example's file name without extension.
	// It is used for both the page link and the thumbnail path.
	Slug        string
	DisplayName string
}

// DiscoverExamples returns slugs of files in dir matching pattern, sorted ascending.
// Slugs are sorted after the extension is stripped: "foo_layer" comes before
// "foo_layer-bar_layer" even though their file names sort the other way.
func DiscoverExamples(dir, pattern string) ([]string, error) {
	matched, err := files.NewMatchingFiles(dir, pattern)
	if err != nil {
		return nil, err
	}

	slugs := []string{}
	for _, file := range matched {
		slugs = append(slugs, file.Stem())
	}

	sort.Strings(slugs)

	return slugs, nil
}

// NewEntries pairs every slug with its display name, keeping the order of slugs.
func NewEntries(slugs []string) []Entry {
	entries := make([]Entry, 0, len(slugs))
	for _, slug := range slugs {
		entries = append(entries, Entry{Slug: slug, DisplayName: FormatDisplayName(slug)})
	}
	return entries
}

// FormatDisplayName turns "geojson_layer" into "GeoJson Layer".
// Only the literal "json" substring receives special treatment.
func FormatDisplayName(slug string) string {
	name := titleCase(strings.ReplaceAll(slug, "_", " "))
	return strings.ReplaceAll(name, "json", "Json")
}

// titleCase upper-cases a cased letter that follows a non-cased character
// and lower-cases the rest, so "3d" becomes "3D" and "HEXAGON" "Hexagon".
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	prevCased := false

	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && prevCased:
			sb.WriteRune(unicode.ToLower(r))
		case cased:
			sb.WriteRune(unicode.ToTitle(r))
		default:
			sb.WriteRune(r)
		}
		prevCased = cased
	}

	return sb.String()
}
