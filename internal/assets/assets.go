package assets

// DefaultStylesheetName is the name of the bundled stylesheet applied when
// a job does not name one.
const DefaultStylesheetName = "normalize"

// stylesheetExt is appended to stylesheet names on lookup.
const stylesheetExt = ".xsl"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStylesheet loads a bundled stylesheet by name using the default
// embedded loader.
// Returns ErrStylesheetNotFound if the stylesheet does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStylesheet(name string) ([]byte, error) {
	return defaultLoader.LoadStylesheet(name)
}

// StylesheetNames lists the bundled stylesheet names in lexical order.
func StylesheetNames() []string {
	return defaultLoader.Names()
}
