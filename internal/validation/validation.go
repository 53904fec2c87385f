// Package validation provides input validation for veritrace.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	emailRegex   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// maxCodeLength bounds verification codes; anything longer is scanner noise,
// not a code the contract could have minted.
const maxCodeLength = 128

// ValidateAddress validates a hex-encoded account address.
func ValidateAddress(address string) error {
	if address == "" {
		return errors.New("address cannot be empty")
	}
	if !addressRegex.MatchString(address) {
		return errors.New("invalid address: must be 0x followed by 40 hex characters")
	}
	return nil
}

// ValidateProductCode validates a verification code string.
func ValidateProductCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("product code cannot be empty")
	}
	if len(code) > maxCodeLength {
		return errors.New("product code too long")
	}
	if strings.ContainsAny(code, " \t\n\r") {
		return errors.New("product code cannot contain whitespace")
	}
	return nil
}

// ValidateEmail validates an email address.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}
