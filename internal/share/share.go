// Package share builds shareable verification links and their scannable
// code images.
package share

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// defaultSize is the QR image edge length in pixels.
const defaultSize = 256

// Generator produces deep links into the verification view and QR images
// encoding them.
type Generator struct {
	baseURL string
	size    int
}

// NewGenerator creates a generator for the given public origin.
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    defaultSize,
	}
}

// VerifyURL returns the shareable URL that deep-links into verification of
// the given code.
func (g *Generator) VerifyURL(code string) string {
	return fmt.Sprintf("%s/?bytecode=%s", g.baseURL, url.QueryEscape(code))
}

// PNG renders a QR code image of the verification URL for the given code.
func (g *Generator) PNG(code string) ([]byte, error) {
	png, err := qrcode.Encode(g.VerifyURL(code), qrcode.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("encoding QR image: %w", err)
	}
	return png, nil
}
