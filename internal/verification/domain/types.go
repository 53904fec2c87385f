// Package domain contains the business logic for product verification.
package domain

// Result is the terminal classification of a verification lookup. It is
// built fresh on every lookup and never cached.
type Result struct {
	IsValid           bool     `json:"isValid"`
	Vendor            *Vendor  `json:"vendor"`
	Product           *Product `json:"product"`
	BlockchainHash    string   `json:"blockchainHash"`
	VerificationCount int      `json:"verificationCount"`
	LastVerified      string   `json:"lastVerified"`
}

// Product is the verified product view.
type Product struct {
	ProductName string `json:"productName"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Category    string `json:"category"`
	Code        string `json:"productCode"`
}

// Vendor is the verified vendor view.
type Vendor struct {
	Name           string `json:"name"`
	CompanyName    string `json:"companyName"`
	Number         int64  `json:"number"`
	Email          string `json:"email"`
	CompanyAddress string `json:"companyAddress"`
	Address        string `json:"address"`
}
