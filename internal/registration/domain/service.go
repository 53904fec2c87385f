// Package domain contains the business logic for on-chain vendor and
// product registration.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/pendergraft/veritrace/internal/chain"
	"github.com/pendergraft/veritrace/internal/observability/metrics"
	"github.com/pendergraft/veritrace/internal/validation"
)

// ContractWriter defines the contract writes needed by registration.
type ContractWriter interface {
	RegisterVendor(ctx context.Context, name, companyName string, number int64, email, companyAddress string) (*types.Transaction, error)
	AddProduct(ctx context.Context, name, description string, price, stock int64, category string) (*types.Transaction, error)
}

// VendorChecker reports whether an address has a vendor record.
type VendorChecker interface {
	IsVendorRegistered(ctx context.Context, address string) (bool, error)
}

// Waiter blocks until a submitted transaction reaches a terminal state.
type Waiter interface {
	Wait(ctx context.Context, tx *types.Transaction) chain.Confirmation
}

// Service coordinates validation, contract writes, and confirmation waits.
type Service struct {
	writer  ContractWriter
	checker VendorChecker
	waiter  Waiter
	sender  string
	logger  *slog.Logger
}

// NewService creates a new registration service. sender is the address that
// signs writes; product registrations are attributed to it by the contract.
func NewService(writer ContractWriter, checker VendorChecker, waiter Waiter, sender string, logger *slog.Logger) *Service {
	return &Service{
		writer:  writer,
		checker: checker,
		waiter:  waiter,
		sender:  sender,
		logger:  logger,
	}
}

// RegisterVendor validates the registration, submits it, and waits for the
// transaction to confirm.
func (s *Service) RegisterVendor(ctx context.Context, reg VendorRegistration) (*Result, error) {
	if err := validateVendor(reg); err != nil {
		metrics.Registration("vendor", "rejected")
		return nil, err
	}

	tx, err := s.writer.RegisterVendor(ctx, reg.Name, reg.CompanyName, reg.Number, reg.Email, reg.CompanyAddress)
	if err != nil {
		metrics.Registration("vendor", "error")
		return nil, fmt.Errorf("registering vendor: %w", err)
	}

	return s.confirm(ctx, "vendor", tx)
}

// AddProduct verifies the signer holds a vendor record, validates the
// product, submits it, and waits for the transaction to confirm.
func (s *Service) AddProduct(ctx context.Context, reg ProductRegistration) (*Result, error) {
	registered, err := s.checker.IsVendorRegistered(ctx, s.sender)
	if err != nil {
		metrics.Registration("product", "error")
		return nil, fmt.Errorf("checking vendor registration: %w", err)
	}
	if !registered {
		metrics.Registration("product", "rejected")
		return nil, ErrNotVendor
	}

	if err := validateProduct(reg); err != nil {
		metrics.Registration("product", "rejected")
		return nil, err
	}

	tx, err := s.writer.AddProduct(ctx, reg.Name, reg.Description, reg.Price, reg.Stock, reg.Category)
	if err != nil {
		metrics.Registration("product", "error")
		return nil, fmt.Errorf("adding product: %w", err)
	}

	return s.confirm(ctx, "product", tx)
}

// IsVendorRegistered reports whether the given address has a vendor record.
func (s *Service) IsVendorRegistered(ctx context.Context, address string) (bool, error) {
	if err := validation.ValidateAddress(address); err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidField, err.Error())
	}
	return s.checker.IsVendorRegistered(ctx, address)
}

func (s *Service) confirm(ctx context.Context, kind string, tx *types.Transaction) (*Result, error) {
	status := s.waiter.Wait(ctx, tx)
	metrics.TxConfirmation(strings.ToLower(status.String()))

	if !status.Confirmed() {
		metrics.Registration(kind, "failed")
		s.logger.Warn("registration transaction did not confirm",
			"kind", kind,
			"tx", tx.Hash().Hex(),
			"status", status.String(),
		)
		return nil, fmt.Errorf("%w: tx %s", ErrTxFailed, tx.Hash().Hex())
	}

	metrics.Registration(kind, "confirmed")
	return &Result{TxHash: tx.Hash().Hex(), Confirmed: true}, nil
}

func validateVendor(reg VendorRegistration) error {
	if strings.TrimSpace(reg.Name) == "" ||
		strings.TrimSpace(reg.CompanyName) == "" ||
		strings.TrimSpace(reg.Email) == "" ||
		strings.TrimSpace(reg.CompanyAddress) == "" {
		return ErrMissingFields
	}
	if reg.Number <= 0 {
		return fmt.Errorf("%w: number must be positive", ErrInvalidField)
	}
	if err := validation.ValidateEmail(reg.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidField, err.Error())
	}
	return nil
}

func validateProduct(reg ProductRegistration) error {
	if strings.TrimSpace(reg.Name) == "" ||
		strings.TrimSpace(reg.Description) == "" ||
		strings.TrimSpace(reg.Category) == "" {
		return ErrMissingFields
	}
	if reg.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidField)
	}
	if reg.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidField)
	}
	return nil
}
