package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	teisplit "github.com/alnah/go-teisplit"
	"github.com/alnah/go-teisplit/internal/config"
	"github.com/alnah/go-teisplit/internal/hints"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, teisplit.ErrXSLTProcessor):
		return hints.ForXSLTProcessor()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, teisplit.ErrReadInput), errors.Is(err, ErrNoInput):
		return hints.ForInputNotFound()
	case errors.Is(err, teisplit.ErrInvalidRange), errors.Is(err, config.ErrInvalidPages):
		return hints.ForPageRange()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configSearchPaths(err))
	case errors.Is(err, teisplit.ErrWriteIntermediate), errors.Is(err, teisplit.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, teisplit.ErrStylesheetNotFound):
		return hints.ForStylesheetNotFound(teisplit.StylesheetNames())
	case errors.Is(err, teisplit.ErrStylesheetLoad), errors.Is(err, teisplit.ErrTransform):
		var re *runError
		if errors.As(err, &re) && re.result != nil {
			return hints.ForTransform(re.result.IntermediatePath)
		}
	}
	return ""
}

// configSearchPaths lists the user config location for a failed config name.
func configSearchPaths(err error) []string {
	var ce *configError
	if !errors.As(err, &ce) {
		return nil
	}
	dir, derr := os.UserConfigDir()
	if derr != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-teisplit", ce.name+".yaml")}
}
