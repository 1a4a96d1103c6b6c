package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-planner/backend/internal/costsplit"
)

func splitCmd() *cobra.Command {
	var travelers int

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Print the per-traveler cost breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(planPath)
			if err != nil {
				return err
			}
			n := travelers
			if !cmd.Flags().Changed("travelers") {
				n = plan.TravelerCount()
			}

			per, err := costsplit.DerivePerTraveler(plan.Costs, n)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Per traveler (%d)\tValue\tShare\n", n)
			for _, s := range costsplit.Shares(per) {
				fmt.Fprintf(w, "%s\t%s\t%s%%\n", s.Label, s.Value, s.Percent)
			}
			fmt.Fprintf(w, "Total Cost\t%s\t\n", per.Total)
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&travelers, "travelers", 1, "party size (default: the plan's travelers)")
	return cmd
}
