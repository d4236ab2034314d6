//go:build !windows

package main

import (
	"os"
	"syscall"
)

// stopSignals cancel a running extraction.
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
