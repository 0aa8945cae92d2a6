package main

import (
	"os"

	"github.com/rigworks/truckdef/cmd/truckdef/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
