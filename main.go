package main

import (
	"os"

	"github.com/rahulnair/lingua/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
