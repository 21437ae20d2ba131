// Package main provides the entry point for the viewbundle CLI tool.
package main

import (
	"github.com/viewbundle/viewbundle/cmd/viewbundle/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
