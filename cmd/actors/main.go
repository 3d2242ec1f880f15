// Package main provides the actors CLI.
package main

import "github.com/mesh-intelligence/actors/internal/cli"

func main() {
	cli.Execute()
}
