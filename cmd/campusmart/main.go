package main

import (
	"os"

	"campusmart/cmd/campusmart/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
