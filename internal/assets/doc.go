// Package assets provides the XSLT stylesheets applied to extracted page
// ranges.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (bundled stylesheets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the bundled stylesheets (normalize, identity)
// embedded at compile time.
//
// FilesystemLoader allows users to provide their own stylesheets from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the splitter. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the stylesheet
// is not found. Resolve additionally accepts a direct file path.
//
// # Directory Structure
//
//	{basePath}/
//	└── stylesheets/
//	    └── {name}.xsl           # XSLT 1.0 stylesheet (e.g., normalize.xsl)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
