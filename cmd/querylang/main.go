// Command querylang is a small demonstration CLI around package eval: it is
// not part of the core embeddable language (the language is meant to be
// compiled into a host program, the way cmd/cue is a thin shell around
// package cue), just a way to exercise a script against a JSON or YAML
// document from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
