package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// SignatureHeader carries the webhook HMAC.
const SignatureHeader = "X-Paystack-Signature"

// VerifySignature checks the HMAC-SHA512 of the raw webhook body against
// the hex signature supplied by the gateway. Constant-time comparison.
func VerifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
