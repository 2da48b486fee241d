package main

import (
	"os"

	"github.com/lvcoi/ytshelf/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
