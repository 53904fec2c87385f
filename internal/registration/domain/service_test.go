package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pendergraft/veritrace/internal/chain"
)

const signerAddr = "0x1111111111111111111111111111111111111111"

type mockWriter struct {
	tx          *types.Transaction
	err         error
	vendorCalls int
	prodCalls   int
}

func (m *mockWriter) RegisterVendor(ctx context.Context, name, companyName string, number int64, email, companyAddress string) (*types.Transaction, error) {
	m.vendorCalls++
	return m.tx, m.err
}

func (m *mockWriter) AddProduct(ctx context.Context, name, description string, price, stock int64, category string) (*types.Transaction, error) {
	m.prodCalls++
	return m.tx, m.err
}

type mockChecker struct {
	registered bool
	err        error
	lastAddr   string
}

func (m *mockChecker) IsVendorRegistered(ctx context.Context, address string) (bool, error) {
	m.lastAddr = address
	return m.registered, m.err
}

type mockWaiter struct {
	status chain.Confirmation
	calls  int
}

func (m *mockWaiter) Wait(ctx context.Context, tx *types.Transaction) chain.Confirmation {
	m.calls++
	return m.status
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pendingTx() *types.Transaction {
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	return types.NewTx(&types.LegacyTx{
		Nonce:    1,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      21000,
		GasPrice: big.NewInt(1),
	})
}

func validVendor() VendorRegistration {
	return VendorRegistration{
		Name:           "Alice",
		CompanyName:    "Acme Corp",
		Number:         12345,
		Email:          "alice@acme.example",
		CompanyAddress: "1 Main St",
	}
}

func validProduct() ProductRegistration {
	return ProductRegistration{
		Name:        "Widget",
		Description: "A steel widget",
		Price:       10,
		Stock:       5,
		Category:    "Tools",
	}
}

func TestRegisterVendor(t *testing.T) {
	tx := pendingTx()
	writer := &mockWriter{tx: tx}
	waiter := &mockWaiter{status: chain.ConfirmationConfirmed}
	svc := NewService(writer, nil, waiter, signerAddr, discardLogger())

	result, err := svc.RegisterVendor(context.Background(), validVendor())
	require.NoError(t, err)
	assert.Equal(t, tx.Hash().Hex(), result.TxHash)
	assert.True(t, result.Confirmed)
	assert.Equal(t, 1, writer.vendorCalls)
	assert.Equal(t, 1, waiter.calls)
}

func TestRegisterVendorMissingFields(t *testing.T) {
	writer := &mockWriter{}
	svc := NewService(writer, nil, &mockWaiter{}, signerAddr, discardLogger())

	reg := validVendor()
	reg.CompanyName = "   "

	_, err := svc.RegisterVendor(context.Background(), reg)
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, 0, writer.vendorCalls)
}

func TestRegisterVendorInvalidNumber(t *testing.T) {
	svc := NewService(&mockWriter{}, nil, &mockWaiter{}, signerAddr, discardLogger())

	reg := validVendor()
	reg.Number = 0

	_, err := svc.RegisterVendor(context.Background(), reg)
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestRegisterVendorInvalidEmail(t *testing.T) {
	svc := NewService(&mockWriter{}, nil, &mockWaiter{}, signerAddr, discardLogger())

	reg := validVendor()
	reg.Email = "not-an-email"

	_, err := svc.RegisterVendor(context.Background(), reg)
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestRegisterVendorSubmitError(t *testing.T) {
	writer := &mockWriter{err: errors.New("nonce too low")}
	waiter := &mockWaiter{}
	svc := NewService(writer, nil, waiter, signerAddr, discardLogger())

	_, err := svc.RegisterVendor(context.Background(), validVendor())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 0, waiter.calls)
}

func TestRegisterVendorTxFailed(t *testing.T) {
	writer := &mockWriter{tx: pendingTx()}
	waiter := &mockWaiter{status: chain.ConfirmationFailed}
	svc := NewService(writer, nil, waiter, signerAddr, discardLogger())

	_, err := svc.RegisterVendor(context.Background(), validVendor())
	require.ErrorIs(t, err, ErrTxFailed)
}

func TestRegisterVendorTxUnknown(t *testing.T) {
	writer := &mockWriter{tx: pendingTx()}
	waiter := &mockWaiter{status: chain.ConfirmationUnknown}
	svc := NewService(writer, nil, waiter, signerAddr, discardLogger())

	_, err := svc.RegisterVendor(context.Background(), validVendor())
	require.ErrorIs(t, err, ErrTxFailed)
}

func TestAddProduct(t *testing.T) {
	tx := pendingTx()
	writer := &mockWriter{tx: tx}
	checker := &mockChecker{registered: true}
	waiter := &mockWaiter{status: chain.ConfirmationConfirmed}
	svc := NewService(writer, checker, waiter, signerAddr, discardLogger())

	result, err := svc.AddProduct(context.Background(), validProduct())
	require.NoError(t, err)
	assert.Equal(t, tx.Hash().Hex(), result.TxHash)
	assert.True(t, result.Confirmed)
	assert.Equal(t, signerAddr, checker.lastAddr)
}

func TestAddProductNotVendor(t *testing.T) {
	writer := &mockWriter{}
	checker := &mockChecker{registered: false}
	svc := NewService(writer, checker, &mockWaiter{}, signerAddr, discardLogger())

	_, err := svc.AddProduct(context.Background(), validProduct())
	require.ErrorIs(t, err, ErrNotVendor)
	assert.Equal(t, 0, writer.prodCalls)
}

func TestAddProductCheckerError(t *testing.T) {
	checker := &mockChecker{err: errors.New("rpc unavailable")}
	svc := NewService(&mockWriter{}, checker, &mockWaiter{}, signerAddr, discardLogger())

	_, err := svc.AddProduct(context.Background(), validProduct())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotVendor)
}

func TestAddProductMissingFields(t *testing.T) {
	checker := &mockChecker{registered: true}
	svc := NewService(&mockWriter{}, checker, &mockWaiter{}, signerAddr, discardLogger())

	reg := validProduct()
	reg.Description = ""

	_, err := svc.AddProduct(context.Background(), reg)
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestAddProductNegativePrice(t *testing.T) {
	checker := &mockChecker{registered: true}
	svc := NewService(&mockWriter{}, checker, &mockWaiter{}, signerAddr, discardLogger())

	reg := validProduct()
	reg.Price = -1

	_, err := svc.AddProduct(context.Background(), reg)
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestAddProductZeroPriceAndStockAllowed(t *testing.T) {
	writer := &mockWriter{tx: pendingTx()}
	checker := &mockChecker{registered: true}
	waiter := &mockWaiter{status: chain.ConfirmationConfirmed}
	svc := NewService(writer, checker, waiter, signerAddr, discardLogger())

	reg := validProduct()
	reg.Price = 0
	reg.Stock = 0

	_, err := svc.AddProduct(context.Background(), reg)
	require.NoError(t, err)
}

func TestIsVendorRegistered(t *testing.T) {
	checker := &mockChecker{registered: true}
	svc := NewService(nil, checker, nil, signerAddr, discardLogger())

	registered, err := svc.IsVendorRegistered(context.Background(), "0xabcdefABCDEF0123456789abcdefABCDEF012345")
	require.NoError(t, err)
	assert.True(t, registered)
}

func TestIsVendorRegisteredBadAddress(t *testing.T) {
	checker := &mockChecker{}
	svc := NewService(nil, checker, nil, signerAddr, discardLogger())

	_, err := svc.IsVendorRegistered(context.Background(), "not-an-address")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Empty(t, checker.lastAddr)
}
