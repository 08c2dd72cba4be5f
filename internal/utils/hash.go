package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 over data with hashKey and returns it
// hex encoded.
//
// Example usage:
//
//	signature := utils.HashString("1700000000.{...}", "mux-secret")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), []byte(hashKey)))
}

// SHA256Base64URL returns base64url(sha256(data)) without padding, the form
// used in body digests of signed deliveries.
func SHA256Base64URL(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func hashBytes(data []byte, key []byte) []byte {
	hasher := hmac.New(sha256.New, key)
	hasher.Write(data)
	return hasher.Sum(nil)
}
