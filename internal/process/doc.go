// Package process runs external helper programs in their own process group
// so that cancellation reaches every descendant.
package process
