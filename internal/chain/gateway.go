// Package chain provides the gateway to the product-authenticity smart
// contract: typed reads and signed writes against a fixed address and ABI,
// plus the transaction confirmation watcher. The gateway does not retry and
// does not cache; call failures propagate to the calling domain.
package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/pendergraft/veritrace/internal/config"
)

// ErrBadResultShape is returned when a contract read decodes into something
// other than the expected tuple layout.
var ErrBadResultShape = errors.New("unexpected contract result shape")

// Gateway is a thin read/write layer over the contract.
type Gateway struct {
	client   *ethclient.Client
	contract *bind.BoundContract
	address  common.Address
	auth     *bind.TransactOpts
	signer   common.Address
	logger   *slog.Logger
}

// Dial connects to the configured RPC endpoint and binds the contract.
func Dial(ctx context.Context, cfg config.ChainConfig, logger *slog.Logger) (*Gateway, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("chain: RPC URL not configured")
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("chain: invalid contract address %q", cfg.ContractAddress)
	}
	if cfg.PrivateKey == "" {
		return nil, errors.New("chain: private key not configured")
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing RPC endpoint: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(contractABIJSON))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("parsing contract ABI: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("parsing private key: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("building transactor: %w", err)
	}

	address := common.HexToAddress(cfg.ContractAddress)
	g := &Gateway{
		client:   client,
		contract: bind.NewBoundContract(address, parsed, client, client, client),
		address:  address,
		auth:     auth,
		signer:   crypto.PubkeyToAddress(key.PublicKey),
		logger:   logger,
	}

	logger.Info("contract gateway ready",
		"contract", address.Hex(),
		"signer", g.signer.Hex(),
		"chain_id", cfg.ChainID,
	)
	return g, nil
}

// Close releases the underlying RPC client.
func (g *Gateway) Close() {
	g.client.Close()
}

// Backend exposes the RPC client for receipt polling.
func (g *Gateway) Backend() bind.DeployBackend {
	return g.client
}

// SignerAddress is the address that signs write transactions.
func (g *Gateway) SignerAddress() string {
	return g.signer.Hex()
}

// IsVendorRegistered reports whether the given address has a vendor record.
func (g *Gateway) IsVendorRegistered(ctx context.Context, address string) (bool, error) {
	var out []interface{}
	err := g.contract.Call(g.callOpts(ctx), &out, "isVendorRegister", common.HexToAddress(address))
	if err != nil {
		return false, fmt.Errorf("calling isVendorRegister: %w", err)
	}
	if len(out) != 1 {
		return false, ErrBadResultShape
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// TotalProducts returns the global product count.
func (g *Gateway) TotalProducts(ctx context.Context) (*big.Int, error) {
	return g.callUint(ctx, "TotalProducts")
}

// TotalVendors returns the global vendor count.
func (g *Gateway) TotalVendors(ctx context.Context) (*big.Int, error) {
	return g.callUint(ctx, "TotalVenders")
}

func (g *Gateway) callUint(ctx context.Context, method string) (*big.Int, error) {
	var out []interface{}
	if err := g.contract.Call(g.callOpts(ctx), &out, method); err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}
	if len(out) != 1 {
		return nil, ErrBadResultShape
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// ProductsOfVendor returns the products registered by one vendor address.
func (g *Gateway) ProductsOfVendor(ctx context.Context, address string) ([]Product, error) {
	var out []interface{}
	err := g.contract.Call(g.callOpts(ctx), &out, "totalProductsOfVender", common.HexToAddress(address))
	if err != nil {
		return nil, fmt.Errorf("calling totalProductsOfVender: %w", err)
	}
	if len(out) != 1 {
		return nil, ErrBadResultShape
	}
	raw := *abi.ConvertType(out[0], new([]rawProduct)).(*[]rawProduct)

	products := make([]Product, len(raw))
	for i, r := range raw {
		products[i] = r.toProduct()
	}
	return products, nil
}

// AllVendorDetails returns every registered vendor in contract order.
func (g *Gateway) AllVendorDetails(ctx context.Context) ([]Vendor, error) {
	var out []interface{}
	if err := g.contract.Call(g.callOpts(ctx), &out, "totalVenderDetails"); err != nil {
		return nil, fmt.Errorf("calling totalVenderDetails: %w", err)
	}
	if len(out) != 1 {
		return nil, ErrBadResultShape
	}
	raw := *abi.ConvertType(out[0], new([]rawVendor)).(*[]rawVendor)

	vendors := make([]Vendor, len(raw))
	for i, r := range raw {
		vendors[i] = r.toVendor()
	}
	return vendors, nil
}

// ProductAndVendorByCode resolves a verification code into its product and
// owning vendor. Missing fields come back defaulted per the normalization
// rules; anything other than an exact (product, vendor) pair is an error.
func (g *Gateway) ProductAndVendorByCode(ctx context.Context, code string) (*Product, *Vendor, error) {
	var out []interface{}
	if err := g.contract.Call(g.callOpts(ctx), &out, "getProductAndVendorByCode", code); err != nil {
		return nil, nil, fmt.Errorf("calling getProductAndVendorByCode: %w", err)
	}
	if len(out) != 2 {
		return nil, nil, ErrBadResultShape
	}

	rawP := *abi.ConvertType(out[0], new(rawProduct)).(*rawProduct)
	rawV := *abi.ConvertType(out[1], new(rawVendor)).(*rawVendor)

	product := rawP.normalized()
	vendor := rawV.normalized()
	return &product, &vendor, nil
}

// RegisterVendor submits a vendor registration write and returns the
// pending transaction.
func (g *Gateway) RegisterVendor(ctx context.Context, name, companyName string, number int64, email, companyAddress string) (*types.Transaction, error) {
	tx, err := g.contract.Transact(g.transactOpts(ctx), "registerVendor",
		name, companyName, big.NewInt(number), email, companyAddress)
	if err != nil {
		return nil, fmt.Errorf("submitting registerVendor: %w", err)
	}
	g.logger.Info("registerVendor submitted", "tx", tx.Hash().Hex())
	return tx, nil
}

// AddProduct submits a product registration write scoped to the signing
// vendor and returns the pending transaction.
func (g *Gateway) AddProduct(ctx context.Context, name, description string, price, stock int64, category string) (*types.Transaction, error) {
	tx, err := g.contract.Transact(g.transactOpts(ctx), "addProduct",
		name, description, big.NewInt(price), big.NewInt(stock), category)
	if err != nil {
		return nil, fmt.Errorf("submitting addProduct: %w", err)
	}
	g.logger.Info("addProduct submitted", "tx", tx.Hash().Hex())
	return tx, nil
}

func (g *Gateway) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

func (g *Gateway) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *g.auth
	opts.Context = ctx
	return &opts
}
