// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

//go:build unix && !linux

package clockcap

// Available reports whether CLOCK_MONOTONIC is usable. Every non-Linux unix
// target the Go toolchain supports ships the clock.
func Available() bool {
	return true
}
