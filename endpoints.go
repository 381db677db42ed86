package krakentoken

const (
	// DefaultHost is the Kraken REST API origin.
	DefaultHost = "https://api.kraken.com"

	// EndpointGetWebSocketsToken issues tokens for the authenticated
	// WebSockets feeds.
	EndpointGetWebSocketsToken = "/0/private/GetWebSocketsToken"

	// Version of this client, carried in DefaultUserAgent.
	Version = "0.1.8"

	DefaultUserAgent = "kraken-ws-token-go v" + Version
)
