package main

import (
	"os"

	"smd-steady/cli"
)

func main() {
	os.Exit(cli.Start())
}
