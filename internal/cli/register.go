package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pendergraft/veritrace/pkg/client"
)

func createRegisterVendorCmd() *cobra.Command {
	var reg client.VendorRegistration

	cmd := &cobra.Command{
		Use:   "register-vendor",
		Short: "Register a vendor on chain",
		Long: `Submit a vendor registration transaction through the server.

The server signs the transaction with its configured key and waits for the
receipt before returning.

EXAMPLES:
  veritrace register-vendor \
    --name "Alice" \
    --company "Acme Corp" \
    --number 5551234 \
    --email alice@acme.example \
    --address "1 Main St"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegisterVendor(reg)
		},
	}

	cmd.Flags().StringVar(&reg.Name, "name", "", "vendor name (required)")
	cmd.Flags().StringVar(&reg.CompanyName, "company", "", "company name (required)")
	cmd.Flags().Int64Var(&reg.Number, "number", 0, "contact number (required)")
	cmd.Flags().StringVar(&reg.Email, "email", "", "contact email (required)")
	cmd.Flags().StringVar(&reg.CompanyAddress, "address", "", "company address (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func createAddProductCmd() *cobra.Command {
	var reg client.ProductRegistration

	cmd := &cobra.Command{
		Use:   "add-product",
		Short: "Register a product on chain",
		Long: `Submit a product registration transaction through the server.

The product is attributed to the server's signing vendor, which must already
hold a vendor record.

EXAMPLES:
  veritrace add-product \
    --name "Widget" \
    --description "A steel widget" \
    --price 10 \
    --stock 100 \
    --category Tools
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddProduct(reg)
		},
	}

	cmd.Flags().StringVar(&reg.Name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&reg.Description, "description", "", "product description (required)")
	cmd.Flags().Int64Var(&reg.Price, "price", 0, "product price")
	cmd.Flags().Int64Var(&reg.Stock, "stock", 0, "available stock")
	cmd.Flags().StringVar(&reg.Category, "category", "", "product category (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func runRegisterVendor(reg client.VendorRegistration) error {
	c := client.New(getServer(), getAPIKey())

	fmt.Printf("Registering vendor %s (%s)...\n", reg.Name, reg.CompanyName)
	result, err := c.RegisterVendor(context.Background(), reg)
	if err != nil {
		return fmt.Errorf("vendor registration failed: %w", err)
	}

	fmt.Println("✅ Vendor registered")
	fmt.Printf("   Tx: %s\n", result.TxHash)
	return nil
}

func runAddProduct(reg client.ProductRegistration) error {
	c := client.New(getServer(), getAPIKey())

	fmt.Printf("Adding product %s...\n", reg.Name)
	result, err := c.AddProduct(context.Background(), reg)
	if err != nil {
		return fmt.Errorf("product registration failed: %w", err)
	}

	fmt.Println("✅ Product added")
	fmt.Printf("   Tx: %s\n", result.TxHash)
	return nil
}
