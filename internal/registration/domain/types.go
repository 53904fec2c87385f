// Package domain contains the business logic for on-chain vendor and
// product registration.
package domain

// VendorRegistration is the input for a vendor registration write.
type VendorRegistration struct {
	Name           string `json:"name"`
	CompanyName    string `json:"companyName"`
	Number         int64  `json:"number"`
	Email          string `json:"email"`
	CompanyAddress string `json:"companyAddress"`
}

// ProductRegistration is the input for a product registration write. The
// product is attributed to the signing vendor by the contract.
type ProductRegistration struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Category    string `json:"category"`
}

// Result reports a submitted write: its transaction hash and whether the
// confirmation watcher saw a successful receipt.
type Result struct {
	TxHash    string `json:"txHash"`
	Confirmed bool   `json:"confirmed"`
}
