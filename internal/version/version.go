// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

// Package version holds build metadata injected at compile time.
//
// Release builds override the defaults via the linker:
//
//	go build -ldflags "-X appdemo/internal/version.Version=1.2.3 -X appdemo/internal/version.Build=153" ./...
package version

// Version is the application version. The default covers local development
// builds; release builds inject the tag reported by git describe.
var Version = "0.0.0"

// Build is the build number, injected at compile time.
var Build = "dev"

// Line renders the one-line version report printed by the version demo.
func Line() string {
	return "version: " + Version
}
