// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

// Command showclock prints whether the build platform provides a monotonic
// clock source. It takes no arguments and writes exactly one line to stdout.
package main

import (
	"fmt"

	"appdemo/internal/clockcap"
)

func main() {
	fmt.Println(clockcap.Message())
}
