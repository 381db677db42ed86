package krakentoken

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/lubluniky/kraken-ws-token-go/internal/signing"
	"github.com/lubluniky/kraken-ws-token-go/internal/transport"
)

var defaultClient = NewClient()

// GetWebSocketsToken gets a Kraken WebSockets API token using the default
// client. apiSecret is the base64 API secret and apiKey the API key, both as
// issued by Kraken.
//
//	token, err := krakentoken.GetWebSocketsToken(apiSecret, apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
func GetWebSocketsToken(apiSecret, apiKey string) (string, error) {
	return defaultClient.GetWebSocketsToken(context.Background(), apiSecret, apiKey)
}

// GetWebSocketsToken signs and sends one GetWebSocketsToken request and
// returns result.token from the response. Failures are returned as *Error.
func (c *Client) GetWebSocketsToken(ctx context.Context, apiSecret, apiKey string) (string, error) {
	tok, err := c.RequestToken(ctx, apiSecret, apiKey)
	if err != nil {
		return "", err
	}
	return tok.Token, nil
}

// RequestToken is GetWebSocketsToken but also reports the token's expiry
// and the nonce the request was signed with.
func (c *Client) RequestToken(ctx context.Context, apiSecret, apiKey string) (*WebSocketsToken, error) {
	nonce, err := signing.Nonce(c.now())
	if err != nil {
		return nil, &Error{Kind: KindClock, Err: err}
	}
	body := signing.Body(nonce)

	sig, err := signing.Sign(apiSecret, EndpointGetWebSocketsToken, nonce, body)
	if err != nil {
		var keyErr *signing.KeyError
		if errors.As(err, &keyErr) {
			return nil, &Error{Kind: KindKeyInit, Err: keyErr.Err}
		}
		var decodeErr *signing.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, &Error{Kind: KindDecode, Err: decodeErr.Err}
		}
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	headers := signing.BuildHeaders(apiKey, sig, c.userAgent)

	log := c.logger.With(zap.Uint64("nonce", nonce), zap.String("url", c.http.URL(EndpointGetWebSocketsToken)))
	log.Debug("requesting websockets token")

	resp, err := c.http.PostRaw(ctx, EndpointGetWebSocketsToken, headers, []byte(body))
	if err != nil {
		log.Debug("token request failed", zap.Error(err))
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	status := resp.StatusCode
	raw, err := transport.ReadBody(resp)
	if err != nil {
		log.Debug("reading token response failed", zap.Int("status", status), zap.Error(err))
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	log.Debug("token response received", zap.Int("status", status), zap.Int("bytes", len(raw)))

	tok, err := parseTokenResponse(raw)
	if err != nil {
		return nil, err
	}
	tok.Nonce = nonce
	return tok, nil
}

// parseTokenResponse extracts result.token, and result.expires when present.
// Non-object values at either level count as a missing key.
func parseTokenResponse(raw []byte) (*WebSocketsToken, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &Error{Kind: KindResponseParse, Err: err}
	}

	root, _ := doc.(map[string]any)
	apiErrors := errorStrings(root["error"])

	result, ok := root["result"]
	if !ok {
		return nil, &Error{Kind: KindShape, Err: &ShapeError{Field: "result", Problem: "missing", APIErrors: apiErrors}}
	}
	resultObj, _ := result.(map[string]any)
	token, ok := resultObj["token"]
	if !ok {
		return nil, &Error{Kind: KindShape, Err: &ShapeError{Field: "token", Problem: "missing", APIErrors: apiErrors}}
	}
	s, ok := token.(string)
	if !ok {
		return nil, &Error{Kind: KindShape, Err: &ShapeError{Field: "token", Problem: "not a string", APIErrors: apiErrors}}
	}

	tok := &WebSocketsToken{Token: s}
	if secs, ok := resultObj["expires"].(float64); ok && secs > 0 {
		tok.Expires = time.Duration(secs * float64(time.Second))
	}
	return tok, nil
}

func errorStrings(v any) []string {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(e))
		}
	}
	return out
}
