package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

var planPath string

// Execute runs the CLI with the process arguments.
func Execute() error {
	return NewRoot().Execute()
}

// NewRoot returns the root command with every subcommand attached.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "travelplan",
		Short:         "Render travel plans and split their costs",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&planPath, "plan", "", "path to the travel plan JSON file")
	//nolint:errcheck // the flag exists.
	root.MarkPersistentFlagRequired("plan")

	root.AddCommand(renderCmd(), splitCmd())
	return root
}

func loadPlan(path string) (domain.TravelPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.TravelPlan{}, fmt.Errorf("read plan: %w", err)
	}
	var plan domain.TravelPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return domain.TravelPlan{}, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return plan, nil
}
