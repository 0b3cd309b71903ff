package main

import (
	"os"

	"github.com/rpgo/annuity-calculator/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
