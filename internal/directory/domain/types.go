// Package domain contains the business logic for the vendor/product
// directory.
package domain

// VendorListing is one vendor with its aggregated product list.
type VendorListing struct {
	Name           string    `json:"name"`
	CompanyName    string    `json:"companyName"`
	Number         int64     `json:"number"`
	Email          string    `json:"email"`
	CompanyAddress string    `json:"companyAddress"`
	Address        string    `json:"address"`
	Products       []Product `json:"products"`
}

// Product is one product within a vendor listing. Bytecode is the
// verification code shared with consumers.
type Product struct {
	ProductName string `json:"productName"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Category    string `json:"category"`
	Bytecode    string `json:"bytecode"`
}

// Stats holds the global registry counters. Values are integer-as-string,
// matching the contract's counter representation.
type Stats struct {
	TotalProducts string `json:"totalProducts"`
	TotalVendors  string `json:"totalVendors"`
}
