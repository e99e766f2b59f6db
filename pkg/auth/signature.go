package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strings"

	docerrors "github.com/jdziat/docdb-go/pkg/errors"
)

const (
	// TokenType is the authorization token type for master keys.
	TokenType = "master"
	// TokenVersion is the authorization token version.
	TokenVersion = "1.0"
)

// CanonicalString returns the string to sign.
func CanonicalString(verb, resourceType, resourceID, date string) string {
	var b strings.Builder
	b.Grow(len(verb) + len(resourceType) + len(resourceID) + len(date) + 5)
	b.WriteString(strings.ToLower(verb))
	b.WriteByte('\n')
	b.WriteString(strings.ToLower(resourceType))
	b.WriteByte('\n')
	b.WriteString(resourceID)
	b.WriteByte('\n')
	b.WriteString(strings.ToLower(date))
	b.WriteByte('\n')
	// empty secondary token line
	b.WriteByte('\n')
	return b.String()
}

// DecodeKey decodes a base64 shared key into raw HMAC key bytes.
func DecodeKey(sharedKey string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(sharedKey))
	if err != nil {
		return nil, docerrors.NewValidationErrorWithCause(docerrors.KindInvalidKey, "key", MaskKey(sharedKey), err)
	}
	if len(key) == 0 {
		return nil, docerrors.NewValidationError(docerrors.KindInvalidKey, "key", "")
	}
	return key, nil
}

// Signature returns the base64 HMAC-SHA256 of canonical under key.
func Signature(key []byte, canonical string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Token builds the percent-encoded authorization header value for sig.
func Token(sig string) string {
	return url.QueryEscape("type=" + TokenType + "&ver=" + TokenVersion + "&sig=" + sig)
}

// MaskKey hides all but the last four characters of a key for logs and
// error messages.
func MaskKey(key string) string {
	const visible = 4
	if len(key) <= visible*2 {
		return "****"
	}
	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}
