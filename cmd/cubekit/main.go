// Cubekit - CLI for manipulating, scrambling and solving Rubik's Cube states.
package main

import (
	"github.com/cubekit/cubekit/internal/cli"
)

func main() {
	cli.Execute()
}
