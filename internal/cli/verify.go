package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pendergraft/veritrace/pkg/client"
)

func createVerifyCmd() *cobra.Command {
	var jsonOutput bool
	var qrOut string

	cmd := &cobra.Command{
		Use:   "verify <bytecode>",
		Short: "Verify a product authenticity code",
		Long: `Verify a product authenticity code against the on-chain registry.

Prints the product and vendor details when the code resolves, or marks the
code invalid otherwise.

EXAMPLES:
  # Verify a code
  veritrace verify 0xA1B2C3

  # Output as JSON
  veritrace verify 0xA1B2C3 --json

  # Save a scannable QR code for sharing
  veritrace verify 0xA1B2C3 --qr code.png
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0], jsonOutput, qrOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().StringVar(&qrOut, "qr", "", "write a QR image of the share link to this file")

	return cmd
}

func runVerify(code string, jsonOutput bool, qrOut string) error {
	c := client.New(getServer(), getAPIKey())
	ctx := context.Background()

	result, err := c.Verify(ctx, code)
	if err != nil {
		return fmt.Errorf("verification request failed: %w", err)
	}

	if qrOut != "" {
		png, err := c.QR(ctx, code)
		if err != nil {
			return fmt.Errorf("fetching QR image: %w", err)
		}
		if err := os.WriteFile(qrOut, png, 0644); err != nil {
			return fmt.Errorf("writing QR image: %w", err)
		}
		fmt.Printf("QR image saved to %s\n", qrOut)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if !result.IsValid {
		fmt.Println("❌ Invalid code")
		fmt.Printf("   Status: %s\n", result.BlockchainHash)
		return nil
	}

	fmt.Println("✅ Authentic product")
	fmt.Printf("   Code:          %s\n", result.BlockchainHash)
	fmt.Printf("   Last verified: %s\n", result.LastVerified)
	if result.Product != nil {
		fmt.Println()
		fmt.Println("Product:")
		fmt.Printf("   Name:        %s\n", result.Product.ProductName)
		fmt.Printf("   Description: %s\n", result.Product.Description)
		fmt.Printf("   Category:    %s\n", result.Product.Category)
		fmt.Printf("   Price:       %d\n", result.Product.Price)
		fmt.Printf("   Stock:       %d\n", result.Product.Stock)
	}
	if result.Vendor != nil {
		fmt.Println()
		fmt.Println("Vendor:")
		fmt.Printf("   Name:    %s\n", result.Vendor.Name)
		fmt.Printf("   Company: %s\n", result.Vendor.CompanyName)
		fmt.Printf("   Email:   %s\n", result.Vendor.Email)
		fmt.Printf("   Address: %s\n", result.Vendor.Address)
	}

	return nil
}
