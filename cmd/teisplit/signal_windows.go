//go:build windows

package main

import "os"

// stopSignals cancel a running extraction. SIGTERM is not delivered on Windows.
var stopSignals = []os.Signal{os.Interrupt}
