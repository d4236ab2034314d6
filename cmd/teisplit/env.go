package main

import (
	"io"
	"os"

	teisplit "github.com/alnah/go-teisplit"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, environment lookup and extra splitter options.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	Options []teisplit.Option // Appended after options derived from flags
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}
