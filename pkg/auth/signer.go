package auth

import (
	"fmt"
	"time"

	"github.com/jdziat/docdb-go/pkg/resource"
)

// Signed holds everything needed to authorize one request.
type Signed struct {
	// Date is the x-ms-date header value.
	Date string
	// Canonical is the string that was signed.
	Canonical string
	// Authorization is the percent-encoded token for the Authorization header.
	Authorization string
}

// Signer computes authorization tokens for a shared key.
//
// The decoded key is not retained: it is decoded on every Sign call and
// dropped when the call returns.
type Signer struct {
	sharedKey string
	clock     Clock
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock sets the clock used to stamp requests.
func WithClock(clock Clock) Option {
	return func(s *Signer) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTime pins the signing time, for reproducible tokens.
func WithTime(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

// NewSigner creates a Signer for a base64 shared key. The key is validated
// eagerly.
func NewSigner(sharedKey string, opts ...Option) (*Signer, error) {
	if _, err := DecodeKey(sharedKey); err != nil {
		return nil, err
	}
	s := &Signer{sharedKey: sharedKey, clock: SystemClock}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sign produces the date and token for verb against the given resource.
func (s *Signer) Sign(verb string, info resource.Info) (*Signed, error) {
	return SignAt(s.sharedKey, verb, info, Now(s.clock))
}

// SignAt signs with an explicit date string.
func SignAt(sharedKey, verb string, info resource.Info, date string) (*Signed, error) {
	key, err := DecodeKey(sharedKey)
	if err != nil {
		return nil, err
	}
	canonical := CanonicalString(verb, info.ResourceType, info.ResourceID, date)
	return &Signed{
		Date:          date,
		Canonical:     canonical,
		Authorization: Token(Signature(key, canonical)),
	}, nil
}

// String implements fmt.Stringer without exposing the token.
func (s *Signed) String() string {
	return fmt.Sprintf("Signed{Date: %q, Authorization: %q}", s.Date, MaskKey(s.Authorization))
}
