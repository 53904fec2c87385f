package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Vendor is a registered manufacturer/seller, keyed by its on-chain address.
type Vendor struct {
	Name           string
	CompanyName    string
	Number         int64
	Email          string
	CompanyAddress string
	Address        string
}

// Product is a registered product. Code is the unique verification code
// minted by the contract at registration time.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	Stock       int64
	Category    string
	Code        string
}

// rawProduct mirrors the contract's product tuple layout.
type rawProduct struct {
	ProductID   *big.Int `abi:"productId"`
	ProductName string   `abi:"productName"`
	Description string   `abi:"description"`
	Price       *big.Int `abi:"price"`
	Stock       *big.Int `abi:"stock"`
	Category    string   `abi:"category"`
	ProductCode string   `abi:"productCode"`
}

// rawVendor mirrors the contract's vendor tuple layout.
type rawVendor struct {
	Name           string         `abi:"name"`
	CompanyName    string         `abi:"companyName"`
	VenderNumber   *big.Int       `abi:"venderNumber"`
	VenderEmail    string         `abi:"venderEmail"`
	CompanyAddress string         `abi:"companyAddress"`
	VendorAddress  common.Address `abi:"vendorAddress"`
}

// toProduct coerces numeric fields and passes text through unchanged. Used
// for directory listings, where absent text stays absent.
func (r rawProduct) toProduct() Product {
	return Product{
		ID:          bigToInt64(r.ProductID),
		Name:        r.ProductName,
		Description: r.Description,
		Price:       bigToInt64(r.Price),
		Stock:       bigToInt64(r.Stock),
		Category:    r.Category,
		Code:        r.ProductCode,
	}
}

func (r rawVendor) toVendor() Vendor {
	return Vendor{
		Name:           r.Name,
		CompanyName:    r.CompanyName,
		Number:         bigToInt64(r.VenderNumber),
		Email:          r.VenderEmail,
		CompanyAddress: r.CompanyAddress,
		Address:        r.VendorAddress.Hex(),
	}
}

// normalized substitutes documented defaults for missing fields. Applied
// once, at the gateway boundary, on the code-lookup path only: the
// verification screen must never show partial data.
func (r rawProduct) normalized() Product {
	p := r.toProduct()
	if p.Name == "" {
		p.Name = "Unknown"
	}
	if p.Description == "" {
		p.Description = "No description"
	}
	if p.Category == "" {
		p.Category = "General"
	}
	return p
}

func (r rawVendor) normalized() Vendor {
	v := r.toVendor()
	if v.Name == "" {
		v.Name = "Unknown"
	}
	if v.CompanyName == "" {
		v.CompanyName = "Unknown"
	}
	if v.Email == "" {
		v.Email = "N/A"
	}
	if v.CompanyAddress == "" {
		v.CompanyAddress = "N/A"
	}
	return v
}

func bigToInt64(n *big.Int) int64 {
	if n == nil || !n.IsInt64() {
		return 0
	}
	return n.Int64()
}
