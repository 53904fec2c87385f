// Package domain contains the business logic for the vendor/product
// directory.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pendergraft/veritrace/internal/chain"
	"github.com/pendergraft/veritrace/internal/observability/metrics"
)

// maxConcurrentFetches bounds the per-vendor product fan-out.
const maxConcurrentFetches = 8

// VendorReader defines the contract reads needed by the directory domain.
type VendorReader interface {
	AllVendorDetails(ctx context.Context) ([]chain.Vendor, error)
	ProductsOfVendor(ctx context.Context, address string) ([]chain.Product, error)
}

// StatsReader defines the registry counter reads.
type StatsReader interface {
	TotalProducts(ctx context.Context) (*big.Int, error)
	TotalVendors(ctx context.Context) (*big.Int, error)
}

type service struct {
	vendors VendorReader
	stats   StatsReader
	logger  *slog.Logger
}

// NewService creates a new directory service.
func NewService(vendors VendorReader, stats StatsReader, logger *slog.Logger) *service {
	return &service{
		vendors: vendors,
		stats:   stats,
		logger:  logger,
	}
}

// Aggregate fetches every vendor and, per vendor, its product list. The
// per-vendor fetches run concurrently with a bounded fan-out: one vendor's
// failure is logged and leaves that vendor with an empty product list, and
// never aborts the rest of the aggregation. Vendor order is preserved.
func (s *service) Aggregate(ctx context.Context) ([]VendorListing, error) {
	vendors, err := s.vendors.AllVendorDetails(ctx)
	if err != nil {
		metrics.DirectoryAggregate("error")
		return nil, fmt.Errorf("fetching vendor details: %w", err)
	}

	listings := make([]VendorListing, len(vendors))

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentFetches)
	for i, vendor := range vendors {
		g.Go(func() error {
			listing := VendorListing{
				Name:           vendor.Name,
				CompanyName:    vendor.CompanyName,
				Number:         vendor.Number,
				Email:          vendor.Email,
				CompanyAddress: vendor.CompanyAddress,
				Address:        vendor.Address,
				Products:       []Product{},
			}

			products, err := s.vendors.ProductsOfVendor(ctx, vendor.Address)
			if err != nil {
				s.logger.Warn("skipping products for vendor",
					"vendor", vendor.Address,
					"error", err,
				)
				metrics.DirectoryVendorSkipped()
				listings[i] = listing
				return nil
			}

			for _, p := range products {
				listing.Products = append(listing.Products, Product{
					ProductName: p.Name,
					Description: p.Description,
					Price:       p.Price,
					Stock:       p.Stock,
					Category:    p.Category,
					Bytecode:    p.Code,
				})
			}
			listings[i] = listing
			return nil
		})
	}
	_ = g.Wait()

	metrics.DirectoryAggregate("ok")
	return listings, nil
}

// Stats returns the global product and vendor counters.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	products, err := s.stats.TotalProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching total products: %w", err)
	}
	vendors, err := s.stats.TotalVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching total vendors: %w", err)
	}
	return &Stats{
		TotalProducts: products.String(),
		TotalVendors:  vendors.String(),
	}, nil
}

// Filter narrows an aggregated snapshot by free-text query and category.
// It is purely client-side over already-fetched data; no re-fetch happens
// per filter change. The query matches vendor name, company name, product
// name, and product description, case-insensitively. A non-empty category
// keeps vendors with at least one product in that category.
func Filter(listings []VendorListing, query, category string) []VendorListing {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]VendorListing, 0, len(listings))
	for _, v := range listings {
		if query != "" && !matchesQuery(v, query) {
			continue
		}
		if category != "" && !hasCategory(v, category) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

func matchesQuery(v VendorListing, query string) bool {
	if strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(v.CompanyName), query) {
		return true
	}
	for _, p := range v.Products {
		if strings.Contains(strings.ToLower(p.ProductName), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			return true
		}
	}
	return false
}

func hasCategory(v VendorListing, category string) bool {
	for _, p := range v.Products {
		if p.Category == category {
			return true
		}
	}
	return false
}
