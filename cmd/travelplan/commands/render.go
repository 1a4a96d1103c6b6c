package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-planner/backend/internal/document"
	"github.com/pkordes/travel-planner/backend/internal/layout"
	"github.com/pkordes/travel-planner/backend/internal/render/pdf"
)

func renderCmd() *cobra.Command {
	var outDir string
	var capacity float64

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the plan as a PDF under its derived file name",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(planPath)
			if err != nil {
				return err
			}

			opts := layout.DefaultOptions()
			if capacity > 0 {
				opts.Capacity = capacity
			}
			composer, err := layout.NewComposer(opts)
			if err != nil {
				return err
			}

			art, err := document.NewAssembler(composer, pdf.New()).Assemble(cmd.Context(), plan)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(outDir, art.FileName)
			if err := os.WriteFile(path, art.Bytes, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d pages)\n", path, art.Pages)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "directory the PDF is written to")
	cmd.Flags().Float64Var(&capacity, "page-capacity", 0, "page body height in mm (default matches A4)")
	return cmd
}
