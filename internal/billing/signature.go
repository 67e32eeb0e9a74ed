package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTolerance bounds the webhook timestamp skew.
const DefaultTolerance = 5 * time.Minute

var (
	// ErrMissingSignature marks a webhook request without a signature header.
	ErrMissingSignature = errors.New("billing: missing signature header")
	// ErrInvalidSignature marks a header that fails parsing, the timestamp
	// tolerance or the HMAC comparison.
	ErrInvalidSignature = errors.New("billing: invalid signature")
)

// VerifySignature checks a Stripe-Signature header against the raw payload.
// The header carries a unix timestamp and one or more v1 candidates, each an
// HMAC-SHA256 of "{t}.{payload}" under the endpoint secret. A tolerance of
// zero disables the timestamp check.
func VerifySignature(payload []byte, header, secret string, tolerance time.Duration) error {
	if header == "" {
		return ErrMissingSignature
	}

	var ts int64 = -1
	var candidates []string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return ErrInvalidSignature
			}
			ts = n
		case "v1":
			candidates = append(candidates, v)
		}
	}
	if ts < 0 || len(candidates) == 0 {
		return ErrInvalidSignature
	}

	if tolerance > 0 {
		age := time.Since(time.Unix(ts, 0))
		if age > tolerance || age < -tolerance {
			return ErrInvalidSignature
		}
	}

	expected := computeSignature(payload, secret, ts)
	for _, cand := range candidates {
		sig, err := hex.DecodeString(cand)
		if err != nil {
			continue
		}
		if hmac.Equal(sig, expected) {
			return nil
		}
	}
	return ErrInvalidSignature
}

// SignatureHeader renders a valid header for payload at time t. Tests and
// local tooling use it to exercise the webhook endpoint.
func SignatureHeader(payload []byte, secret string, t time.Time) string {
	sig := computeSignature(payload, secret, t.Unix())
	return fmt.Sprintf("t=%d,v1=%s", t.Unix(), hex.EncodeToString(sig))
}

func computeSignature(payload []byte, secret string, ts int64) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return mac.Sum(nil)
}
