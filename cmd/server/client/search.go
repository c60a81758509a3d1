package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexboard/internal/handlers/dashboard/v1alpha1"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Find a creature by name",
	Long:  `Look a creature up by exact name, or list close names when there is no exact match.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		fields := map[string]any{v1alpha1.FieldName: args[0]}
		if searchLimit > 0 {
			fields[v1alpha1.FieldLimit] = searchLimit
		}
		return call(func(c v1alpha1.DashboardServiceClient) callFunc { return c.Search }, fields)
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum suggestions")
}
