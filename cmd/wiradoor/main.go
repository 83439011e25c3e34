package main

import (
	"os"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
