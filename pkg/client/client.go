// Package client provides a Go client for the Veritrace API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is a Veritrace API client
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// New creates a new Veritrace client
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// VerificationResult is the outcome of a verification lookup
type VerificationResult struct {
	IsValid           bool    `json:"isValid"`
	Vendor            *Vendor `json:"vendor,omitempty"`
	Product           *Item   `json:"product,omitempty"`
	BlockchainHash    string  `json:"blockchainHash"`
	VerificationCount int     `json:"verificationCount"`
	LastVerified      string  `json:"lastVerified"`
}

// Vendor is a registered vendor
type Vendor struct {
	Name           string `json:"name"`
	CompanyName    string `json:"companyName"`
	Number         int64  `json:"number"`
	Email          string `json:"email"`
	CompanyAddress string `json:"companyAddress"`
	Address        string `json:"address"`
}

// Item is a verified product
type Item struct {
	ProductName string `json:"productName"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Category    string `json:"category"`
	ProductCode string `json:"productCode"`
}

// VendorListing is a directory entry with its products
type VendorListing struct {
	Name           string    `json:"name"`
	CompanyName    string    `json:"companyName"`
	Number         int64     `json:"number"`
	Email          string    `json:"email"`
	CompanyAddress string    `json:"companyAddress"`
	Address        string    `json:"address"`
	Products       []Listing `json:"products"`
}

// Listing is a product within a directory entry
type Listing struct {
	ProductName string `json:"productName"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Category    string `json:"category"`
	Bytecode    string `json:"bytecode"`
}

// Stats holds the registry counters
type Stats struct {
	TotalProducts string `json:"totalProducts"`
	TotalVendors  string `json:"totalVendors"`
}

// VendorRegistration is the request for registering a vendor
type VendorRegistration struct {
	Name           string `json:"name"`
	CompanyName    string `json:"companyName"`
	Number         int64  `json:"number"`
	Email          string `json:"email"`
	CompanyAddress string `json:"companyAddress"`
}

// ProductRegistration is the request for adding a product
type ProductRegistration struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Category    string `json:"category"`
}

// RegistrationResult reports a submitted write
type RegistrationResult struct {
	TxHash    string `json:"txHash"`
	Confirmed bool   `json:"confirmed"`
}

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Verify resolves a verification code against the contract
func (c *Client) Verify(ctx context.Context, code string) (*VerificationResult, error) {
	var resp VerificationResult
	path := "/api/v1/verify?bytecode=" + url.QueryEscape(code)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QR fetches the QR image encoding the verification link for a code
func (c *Client) QR(ctx context.Context, code string) ([]byte, error) {
	return c.getRaw(ctx, "/api/v1/verify/"+url.PathEscape(code)+"/qr")
}

// Directory fetches the vendor directory, optionally filtered
func (c *Client) Directory(ctx context.Context, query, category string) ([]VendorListing, error) {
	var resp struct {
		Vendors []VendorListing `json:"vendors"`
	}

	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if category != "" {
		params.Set("category", category)
	}
	path := "/api/v1/directory"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Vendors, nil
}

// Stats fetches the registry counters
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var resp Stats
	if err := c.get(ctx, "/api/v1/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VendorRegistered reports whether an address has a vendor record
func (c *Client) VendorRegistered(ctx context.Context, address string) (bool, error) {
	var resp struct {
		Registered bool `json:"registered"`
	}
	path := "/api/v1/vendors/" + url.PathEscape(address) + "/registered"
	if err := c.get(ctx, path, &resp); err != nil {
		return false, err
	}
	return resp.Registered, nil
}

// RegisterVendor submits a vendor registration
func (c *Client) RegisterVendor(ctx context.Context, reg VendorRegistration) (*RegistrationResult, error) {
	var resp RegistrationResult
	if err := c.post(ctx, "/api/v1/vendors", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddProduct submits a product registration
func (c *Client) AddProduct(ctx context.Context, reg ProductRegistration) (*RegistrationResult, error) {
	var resp RegistrationResult
	if err := c.post(ctx, "/api/v1/products", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, result)
}

func (c *Client) getRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, c.parseError(resp)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.parseError(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
}

func (c *Client) parseError(resp *http.Response) error {
	var errResp struct {
		Error APIError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	return &errResp.Error
}
