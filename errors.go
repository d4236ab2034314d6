package teisplit

import "errors"

// Sentinel errors for library operations.
var (
	// Job validation errors.
	ErrEmptyInputPath = errors.New("input path cannot be empty")
	ErrInvalidRange   = errors.New("invalid page range")
	ErrEmptyYear      = errors.New("volume year cannot be empty")
	ErrInvalidYear    = errors.New("invalid volume year")

	// Pipeline errors, wrapped in *StageError by Run.
	ErrReadInput         = errors.New("failed to read input document")
	ErrAssemble          = errors.New("failed to assemble document")
	ErrWriteIntermediate = errors.New("failed to write intermediate file")
	ErrStylesheetLoad    = errors.New("failed to load stylesheet")
	ErrTransform         = errors.New("XSLT transform failed")
	ErrWriteOutput       = errors.New("failed to write output file")

	// Asset and engine errors.
	ErrStylesheetNotFound = errors.New("stylesheet not found")
	ErrInvalidAssetPath   = errors.New("invalid asset path")
	ErrXSLTProcessor      = errors.New("xslt processor not found")
)
