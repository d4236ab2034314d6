package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	teisplit "github.com/alnah/go-teisplit"
)

// runError carries the partial result of a failed run so hints can point at
// files left on disk.
type runError struct {
	err    error
	result *teisplit.Result
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// configError remembers which config name failed to load.
type configError struct {
	name string
	err  error
}

func (e *configError) Error() string { return fmt.Sprintf("loading config: %v", e.err) }
func (e *configError) Unwrap() error { return e.err }

// usageError wraps flag parsing failures. Help requests pass through.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
