package tei

import "errors"

// Sentinel errors for tree operations.
var (
	ErrRead             = errors.New("failed to read XML document")
	ErrNoRoot           = errors.New("document has no root element")
	ErrMissingNamespace = errors.New("no URI bound to the tei prefix")
	ErrSerialize        = errors.New("failed to serialize document")
)
