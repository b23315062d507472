// ncube - CLI application for playing with an NxN Rubik's Cube simulation.
package main

import (
	"github.com/SeamusWaldron/ncube/internal/cli"
)

func main() {
	cli.Execute()
}
