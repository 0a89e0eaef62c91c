// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package gridhtml

import (
	"fmt"

	"github.com/visgl/gridgen/pkg/gallery"
)

// TemplateError is returned when the gallery page could not be rendered
type TemplateError struct {
	TemplateID string
	Err        error
}

func (e TemplateError) Error() string {
	return fmt.Sprintf("Rendering template '%s': %s", e.TemplateID, e.Err)
}

func (e TemplateError) Unwrap() error { return e.Err }

// RenderGallery renders entries, in the given order, as an HTML grid fragment.
func RenderGallery(entries []gallery.Entry, renderer Renderer) (string, error) {
	for i, entry := range entries {
		if len(entry.Slug) == 0 {
			return "", TemplateError{GridTemplateID, fmt.Errorf("Expected entry %d to have a slug", i)}
		}
		if len(entry.DisplayName) == 0 {
			return "", TemplateError{GridTemplateID, fmt.Errorf("Expected entry '%s' to have a display name", entry.Slug)}
		}
	}

	if entries == nil {
		entries = []gallery.Entry{}
	}

	result, err := renderer.Render(GridTemplateID, Bindings{"Entries": entries})
	if err != nil {
		return "", TemplateError{GridTemplateID, err}
	}

	return result, nil
}
