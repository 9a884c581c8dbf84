package main

import (
	"os"

	"github.com/msto63/imstr/cmd/imstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
