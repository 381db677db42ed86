package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrEmptyKey is returned when the decoded API secret holds no key material.
var ErrEmptyKey = errors.New("empty key material")

// ClockError indicates the wall clock could not produce a nonce.
type ClockError struct {
	Now time.Time
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("clock reports %s, which is before the unix epoch", e.Now.UTC().Format(time.RFC3339Nano))
}

// DecodeError indicates the API secret is not valid standard base64.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decoding api secret: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// KeyError indicates the decoded secret was rejected as HMAC key material.
type KeyError struct {
	Err error
}

func (e *KeyError) Error() string { return "creating hmac: " + e.Err.Error() }

func (e *KeyError) Unwrap() error { return e.Err }

// Nonce returns the milliseconds elapsed since the unix epoch at now.
func Nonce(now time.Time) (uint64, error) {
	ms := now.UnixMilli()
	if ms < 0 {
		return 0, &ClockError{Now: now}
	}
	return uint64(ms), nil
}

// Body builds the form body posted with the request.
func Body(nonce uint64) string {
	return "nonce=" + strconv.FormatUint(nonce, 10)
}

// Sign computes the API-Sign value for a private endpoint call.
//
// Parameters:
//   - secret: standard base64 encoded API secret
//   - path: URI path of the endpoint (e.g., "/0/private/GetWebSocketsToken")
//   - nonce: the nonce embedded in body
//   - body: the exact request body
//
// The signature is HMAC-SHA512 keyed by the decoded secret over
// path + SHA256(nonce + body), returned base64 encoded.
func Sign(secret, path string, nonce uint64, body string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	if len(key) == 0 {
		return "", &KeyError{Err: ErrEmptyKey}
	}

	digest := sha256.Sum256([]byte(strconv.FormatUint(nonce, 10) + body))

	mac := hmac.New(sha512.New, key)
	mac.Write([]byte(path))
	mac.Write(digest[:])

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
