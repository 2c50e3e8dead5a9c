package main

import (
	"os"

	"github.com/skystride/droneops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
