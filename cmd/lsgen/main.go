//go:build !wasm

package main

import (
	"fmt"
	"os"

	"github.com/tinywasm/labelschema/cmd/lsgen/cli"
)

// Version is set by ldflags during build.
var Version = "dev"

func main() {
	if err := cli.NewRootCommand(Version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lsgen:", err)
		os.Exit(1)
	}
}
