package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var walletAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsWalletAddress reports whether s looks like an EVM wallet address
// (0x-prefixed, 40 hex characters). Case is ignored; no checksum validation.
func IsWalletAddress(s string) bool {
	return walletAddressPattern.MatchString(strings.TrimSpace(s))
}

// NormalizeWalletAddress trims and lowercases an address for storage and
// comparison. Callers should validate with IsWalletAddress first.
func NormalizeWalletAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GenerateMessageID creates a unique message identifier using UUID v4.
func GenerateMessageID() string {
	return uuid.New().String()
}
