package teisplit

import (
	"errors"
	"fmt"

	"github.com/alnah/go-teisplit/internal/assets"
)

// DefaultStylesheet is the name of the bundled stylesheet used when a job
// names none.
const DefaultStylesheet = assets.DefaultStylesheetName

// AssetLoader defines the contract for loading XSLT stylesheets by name.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to the bundled stylesheets. Implement this interface for custom
// backends.
type AssetLoader interface {
	// LoadStylesheet loads a stylesheet by name (without .xsl extension).
	// Returns ErrStylesheetNotFound if the stylesheet doesn't exist.
	LoadStylesheet(name string) ([]byte, error)
}

// StylesheetNames lists the bundled stylesheet names.
func StylesheetNames() []string {
	return assets.StylesheetNames()
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only bundled stylesheets.
// If basePath is set, {basePath}/stylesheets/{name}.xsl takes precedence.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps the internal resolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStylesheet(name string) ([]byte, error) {
	content, err := a.resolver.LoadStylesheet(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return content, nil
}

// publicToInternalAdapter wraps a public AssetLoader so that the internal
// resolver recognizes its "not found" errors and falls back.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStylesheet(name string) ([]byte, error) {
	content, err := a.pub.LoadStylesheet(name)
	if errors.Is(err, ErrStylesheetNotFound) {
		return nil, fmt.Errorf("%w: %v", assets.ErrStylesheetNotFound, err)
	}
	return content, err
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStylesheetNotFound):
		return wrapError(ErrStylesheetNotFound, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStylesheetNotFound, err) // Invalid name means not found
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrAssetRead):
		return wrapError(ErrStylesheetLoad, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}

// Compile-time interface checks.
var (
	_ AssetLoader        = (*assetLoaderAdapter)(nil)
	_ assets.AssetLoader = (*publicToInternalAdapter)(nil)
)
