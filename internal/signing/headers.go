package signing

import "net/http"

// Header key constants used by the Kraken private REST API.
const (
	HeaderUserAgent = "User-Agent"
	HeaderApiKey    = "API-Key"
	HeaderApiSign   = "API-Sign"
)

// BuildHeaders returns the headers for an authenticated private call.
// The api key is passed through unmodified.
func BuildHeaders(apiKey, signature, userAgent string) http.Header {
	h := http.Header{}
	h.Set(HeaderUserAgent, userAgent)
	h.Set(HeaderApiKey, apiKey)
	h.Set(HeaderApiSign, signature)
	return h
}
