package main

import (
	"errors"
	"os"

	teisplit "github.com/alnah/go-teisplit"
	"github.com/alnah/go-teisplit/internal/config"
)

// Exit codes for teisplit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful extraction
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // Input unreadable, write failures
	ExitTransform = 4 // Stylesheet or XSLT errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Stylesheet/transform errors (exit 4)
	if errors.Is(err, teisplit.ErrStylesheetNotFound) ||
		errors.Is(err, teisplit.ErrStylesheetLoad) ||
		errors.Is(err, teisplit.ErrTransform) ||
		errors.Is(err, teisplit.ErrXSLTProcessor) {
		return ExitTransform
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, teisplit.ErrReadInput) ||
		errors.Is(err, teisplit.ErrWriteIntermediate) ||
		errors.Is(err, teisplit.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidPages) ||
		errors.Is(err, teisplit.ErrEmptyInputPath) ||
		errors.Is(err, teisplit.ErrInvalidRange) ||
		errors.Is(err, teisplit.ErrEmptyYear) ||
		errors.Is(err, teisplit.ErrInvalidYear) ||
		errors.Is(err, teisplit.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
