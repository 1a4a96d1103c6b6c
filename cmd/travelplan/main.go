package main

import (
	"os"

	"github.com/pkordes/travel-planner/backend/cmd/travelplan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
