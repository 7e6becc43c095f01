// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

//go:build !unix && !windows

package clockcap

// Available reports whether a monotonic clock source is usable. Unknown
// platforms get the conservative answer.
func Available() bool {
	return false
}
