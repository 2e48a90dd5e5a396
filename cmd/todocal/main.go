package main

import (
	"os"

	"github.com/sandeepkv93/todocal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
