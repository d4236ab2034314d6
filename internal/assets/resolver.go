package assets

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-teisplit/internal/fileutil"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the stylesheet is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded stylesheets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// NewResolverWithLoaders creates an AssetResolver over arbitrary loaders.
// custom may be nil.
func NewResolverWithLoaders(custom, embedded AssetLoader) *AssetResolver {
	return &AssetResolver{custom: custom, embedded: embedded}
}

// LoadStylesheet loads a stylesheet by name, trying the custom loader first
// if available.
func (r *AssetResolver) LoadStylesheet(name string) ([]byte, error) {
	if r.custom == nil {
		return r.embedded.LoadStylesheet(name)
	}

	content, err := r.custom.LoadStylesheet(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrStylesheetNotFound) {
		return nil, err
	}

	return r.embedded.LoadStylesheet(name)
}

// Resolve loads a stylesheet reference: a file path is read from disk,
// anything else is looked up by name. An empty reference selects
// DefaultStylesheetName.
func (r *AssetResolver) Resolve(ref string) ([]byte, error) {
	if ref == "" {
		ref = DefaultStylesheetName
	}
	if !fileutil.IsFilePath(ref) {
		return r.LoadStylesheet(ref)
	}

	content, err := os.ReadFile(ref) // #nosec G304 -- user-provided stylesheet path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStylesheetNotFound, ref)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return content, nil
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
