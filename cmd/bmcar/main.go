package main

import (
	"os"

	"github.com/nikbrunner/bmcar/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
