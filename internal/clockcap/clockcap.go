// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

// Package clockcap reports whether the platform provides a monotonic clock
// source. The answer is fixed per platform at build time; on Linux it is
// additionally confirmed against the live clock_gettime interface, since
// POSIX makes CLOCK_MONOTONIC optional.
package clockcap

const (
	haveMessage = "have a monotonic clock!"
	noneMessage = "what a pitty: have no monotonic clock"
)

// Message returns the human-readable capability report for this platform.
func Message() string {
	return message(Available())
}

func message(available bool) string {
	if available {
		return haveMessage
	}

	return noneMessage
}
