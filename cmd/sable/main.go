package main

import (
	"os"

	"github.com/sablelang/sable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
