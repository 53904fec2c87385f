package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pendergraft/veritrace/pkg/client"
)

func createDirectoryCmd() *cobra.Command {
	var query string
	var category string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Browse the vendor directory",
		Long: `List registered vendors and their products.

The query matches vendor name, company, product name, and description.
The category filter keeps vendors with at least one product in that category.

EXAMPLES:
  # List all vendors
  veritrace directory

  # Search across vendors and products
  veritrace directory --query widget

  # Filter by category
  veritrace directory --category Electronics

  # Output as JSON
  veritrace directory --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectory(query, category, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().StringVar(&category, "category", "", "filter by product category")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}

func runDirectory(query, category string, jsonOutput bool) error {
	c := client.New(getServer(), getAPIKey())

	vendors, err := c.Directory(context.Background(), query, category)
	if err != nil {
		return fmt.Errorf("failed to load directory: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"vendors": vendors,
			"count":   len(vendors),
		})
	}

	if len(vendors) == 0 {
		fmt.Println("No vendors found")
		return nil
	}

	for _, v := range vendors {
		fmt.Printf("%s (%s)\n", v.Name, v.CompanyName)
		fmt.Printf("  Address: %s\n", v.Address)
		if len(v.Products) == 0 {
			fmt.Println("  (no products)")
			fmt.Println()
			continue
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  PRODUCT\tCATEGORY\tPRICE\tSTOCK\tCODE")
		for _, p := range v.Products {
			fmt.Fprintf(w, "  %s\t%s\t%d\t%d\t%s\n", p.ProductName, p.Category, p.Price, p.Stock, p.Bytecode)
		}
		w.Flush()
		fmt.Println()
	}

	return nil
}
