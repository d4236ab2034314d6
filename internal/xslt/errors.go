package xslt

import "errors"

// Sentinel errors for the transform stage.
var (
	ErrEmptyStylesheet = errors.New("stylesheet is empty")
	ErrStylesheetLoad  = errors.New("failed to compile stylesheet")
	ErrTransform       = errors.New("failed to apply stylesheet")
	ErrClosed          = errors.New("stylesheet already closed")
	ErrEngineNotFound  = errors.New("xslt processor not found")
)
