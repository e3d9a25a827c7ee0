package main

import (
	"os"

	"github.com/Makepad-fr/brickscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
