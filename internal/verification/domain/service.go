// Package domain contains the business logic for product verification.
package domain

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pendergraft/veritrace/internal/chain"
)

// Markers stamped into results that never reached a verified pair.
const (
	markerNoCode   = "No bytecode provided"
	markerNotFound = "Not found"
	neverVerified  = "Never"
)

// CodeReader defines the contract read needed by the verification domain.
type CodeReader interface {
	ProductAndVendorByCode(ctx context.Context, code string) (*chain.Product, *chain.Vendor, error)
}

type service struct {
	reader CodeReader
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new verification service.
func NewService(reader CodeReader, logger *slog.Logger) *service {
	return &service{
		reader: reader,
		logger: logger,
		now:    time.Now,
	}
}

// Resolve classifies a verification code as authentic or not. It always
// yields a terminal Result: a blank code short-circuits without a chain
// call, and any lookup failure or malformed response is reported as not
// found rather than as a distinct error. A consumer-facing safety screen
// must never show partially trusted data.
func (s *service) Resolve(ctx context.Context, code string) *Result {
	code = strings.TrimSpace(code)
	if code == "" {
		return &Result{
			IsValid:           false,
			BlockchainHash:    markerNoCode,
			VerificationCount: 0,
			LastVerified:      neverVerified,
		}
	}

	product, vendor, err := s.reader.ProductAndVendorByCode(ctx, code)
	if err != nil || product == nil || vendor == nil {
		s.logger.Warn("verification lookup failed", "code", code, "error", err)
		return &Result{
			IsValid:           false,
			BlockchainHash:    markerNotFound,
			VerificationCount: 0,
			LastVerified:      neverVerified,
		}
	}

	return &Result{
		IsValid: true,
		Product: &Product{
			ProductName: product.Name,
			Description: product.Description,
			Price:       product.Price,
			Stock:       product.Stock,
			Category:    product.Category,
			Code:        product.Code,
		},
		Vendor: &Vendor{
			Name:           vendor.Name,
			CompanyName:    vendor.CompanyName,
			Number:         vendor.Number,
			Email:          vendor.Email,
			CompanyAddress: vendor.CompanyAddress,
			Address:        vendor.Address,
		},
		BlockchainHash: code,
		// The contract does not track historical verification counts.
		VerificationCount: 1,
		LastVerified:      s.now().UTC().Format("2006-01-02"),
	}
}
