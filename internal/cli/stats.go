package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pendergraft/veritrace/pkg/client"
)

func createStatsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show registry counters",
		Long: `Show the total number of registered products and vendors.

EXAMPLES:
  veritrace stats
  veritrace stats --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}

func runStats(jsonOutput bool) error {
	c := client.New(getServer(), getAPIKey())

	stats, err := c.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("Products: %s\n", stats.TotalProducts)
	fmt.Printf("Vendors:  %s\n", stats.TotalVendors)
	return nil
}
