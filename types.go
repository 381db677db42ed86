package krakentoken

import "time"

// WebSocketsToken is a token for the authenticated WebSockets feeds.
type WebSocketsToken struct {
	Token string
	// Expires is how long the token stays valid if unused; zero when the
	// response did not say.
	Expires time.Duration
	// Nonce is the nonce the request was signed with.
	Nonce uint64
}
