// Package assets stores uploaded venue images and hands back the path or
// URL they are later served from.
package assets

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"unicode"
)

type Store interface {
	// Save persists one image and returns the public reference to put in
	// the venue image list.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// NormalizeFilename strips any client-supplied directory part and replaces
// whitespace so the name is safe to use as a single path segment.
func NormalizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
}
