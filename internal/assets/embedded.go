package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed stylesheets/*
var stylesheets embed.FS

// EmbeddedLoader loads stylesheets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStylesheet loads a stylesheet from embedded assets by name.
// The name should not include the .xsl extension.
func (e *EmbeddedLoader) LoadStylesheet(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := stylesheets.ReadFile("stylesheets/" + name + stylesheetExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStylesheetNotFound, name)
	}

	return content, nil
}

// Names lists the embedded stylesheet names in lexical order.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(stylesheets, "stylesheets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), stylesheetExt); ok {
			names = append(names, name)
		}
	}
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
