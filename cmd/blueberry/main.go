package main

import (
	"os"

	"github.com/blueberrypy/blueberry/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
