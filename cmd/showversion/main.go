// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

// Command showversion prints the application version baked into the binary.
// It takes no arguments and writes exactly one line to stdout.
package main

import (
	"fmt"

	"appdemo/internal/version"
)

func main() {
	fmt.Println(version.Line())
}
