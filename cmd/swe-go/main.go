package main

import (
	"fmt"
	"os"

	"github.com/libswe/swe-go/internal/cli"
)

func main() {
	// Contract violations in pkg/swe panic; report them like any other
	// failure instead of dumping a stack.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "swe-go: %v\n", r)
			os.Exit(2)
		}
	}()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "swe-go: %v\n", err)
		os.Exit(1)
	}
}
