package wex

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// signBody computes the hex HMAC-SHA512 of the url-encoded request body,
// keyed by the API secret. The exchange recomputes it over the raw body and
// compares against the Sign header.
func signBody(body, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}
