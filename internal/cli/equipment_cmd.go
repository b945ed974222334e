package cli

import (
	"fmt"

	"github.com/evmartin/brigade/internal/cli/formatter"
	"github.com/evmartin/brigade/internal/domain"
	"github.com/spf13/cobra"
)

func newEquipmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equipment",
		Short: "List the known equipment catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"ID", "NAME", "PARALLEL"}
			rows := make([][]string, 0, len(domain.Catalog))
			for _, e := range domain.Catalog {
				parallel := formatter.StyleGreen.Render("yes")
				if !e.ParallelCapable {
					parallel = formatter.StyleRed.Render("no")
				}
				rows = append(rows, []string{e.ID, e.Name, parallel})
			}
			fmt.Print(formatter.RenderBox("Equipment", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
