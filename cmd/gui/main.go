// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

// Command gui is the entry point for the GUI demo application.
// It creates an Application instance, sets its build metadata, and hands
// control to the toolkit's event loop until the window is closed.
package main

import (
	"os"

	"appdemo/internal/app"
	"appdemo/internal/version"
)

// Name defines the application name used for display and logging purposes.
const Name = "Application"

func main() {
	a := app.New(Name)
	a.Meta.Version = version.Version
	a.Meta.Build = version.Build
	os.Exit(a.Run())
}
