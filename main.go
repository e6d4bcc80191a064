// Package main is the entry point for the noprint CLI.
package main

import "noprint.dev/pkg/noprint/cmd"

func main() {
	cmd.Execute()
}
