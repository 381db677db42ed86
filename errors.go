package krakentoken

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the step of a token request that failed.
type Kind int

const (
	// KindClock: the wall clock reported a time before the unix epoch.
	KindClock Kind = iota + 1
	// KindDecode: the API secret is not valid base64.
	KindDecode
	// KindKeyInit: the decoded secret was rejected as HMAC key material.
	KindKeyInit
	// KindTransport: the request could not be sent or its response read.
	KindTransport
	// KindResponseParse: the response body is not valid JSON.
	KindResponseParse
	// KindShape: the JSON lacks a string at result.token.
	KindShape
)

func (k Kind) String() string {
	switch k {
	case KindClock:
		return "calculating nonce"
	case KindDecode:
		return "decoding api secret"
	case KindKeyInit:
		return "creating hmac"
	case KindTransport:
		return "sending token request"
	case KindResponseParse:
		return "parsing token response"
	case KindShape:
		return "reading token response"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrClock         = &Error{Kind: KindClock}
	ErrDecode        = &Error{Kind: KindDecode}
	ErrKeyInit       = &Error{Kind: KindKeyInit}
	ErrTransport     = &Error{Kind: KindTransport}
	ErrResponseParse = &Error{Kind: KindResponseParse}
	ErrShape         = &Error{Kind: KindShape}
)

// Error is returned by every failing token request. Kind tells callers which
// step failed; Err carries the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "kraken: " + e.Kind.String()
	}
	return fmt.Sprintf("kraken: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrShape) works
// regardless of the cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// ShapeError describes which lookup into the response failed.
type ShapeError struct {
	// Field is the missing or mistyped key: "result" or "token".
	Field string
	// Problem is "missing" or "not a string".
	Problem string
	// APIErrors holds the response's error array, if any.
	APIErrors []string
}

func (e *ShapeError) Error() string {
	var msg string
	if e.Problem == "missing" {
		msg = fmt.Sprintf("missing '%s' key from token response", e.Field)
	} else {
		msg = fmt.Sprintf("'%s' in token response is %s", e.Field, e.Problem)
	}
	if len(e.APIErrors) > 0 {
		msg += " (api errors: " + strings.Join(e.APIErrors, ", ") + ")"
	}
	return msg
}

// KindOf returns the Kind of err, or 0 when err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsRetryable returns true if the error is transient and a new request, with
// a fresh nonce, may succeed.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindTransport, KindClock:
		return true
	}
	return false
}
