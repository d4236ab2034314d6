package assets

// AssetLoader defines the contract for loading XSLT stylesheets.
type AssetLoader interface {
	// LoadStylesheet loads a stylesheet by name (without .xsl extension).
	// Returns ErrStylesheetNotFound if the stylesheet doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStylesheet(name string) ([]byte, error)
}
