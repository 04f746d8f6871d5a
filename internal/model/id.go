package model

import (
	"crypto/rand"
	"encoding/hex"
)

// IDLength is the length of user and card identifiers: 24 hex characters.
const IDLength = 24

// NewID mints a 24-character lowercase hex identifier.
func NewID() string {
	buf := make([]byte, IDLength/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// IsID reports whether s has the 24-character hex identifier shape.
func IsID(s string) bool {
	if len(s) != IDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
