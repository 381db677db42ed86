package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRawSendsBodyVerbatim(t *testing.T) {
	var gotBody string
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/0/private/GetWebSocketsToken", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotHeader = r.Header.Clone()
		_, _ = w.Write([]byte(`ok`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL + "/")
	h := http.Header{}
	h.Set("API-Key", "k")

	resp, err := c.PostRaw(context.Background(), "0/private/GetWebSocketsToken", h, []byte("nonce=7"))
	require.NoError(t, err)
	body, err := ReadBody(resp)
	require.NoError(t, err)

	assert.Equal(t, "ok", string(body))
	assert.Equal(t, "nonce=7", gotBody)
	assert.Equal(t, "k", gotHeader.Get("API-Key"))
	assert.NotEqual(t, "application/json", gotHeader.Get("Content-Type"))
}

func TestReadBodyIgnoresStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":["EService:Unavailable"]}`))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL).PostRaw(context.Background(), "/x", nil, nil)
	require.NoError(t, err)
	body, err := ReadBody(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":["EService:Unavailable"]}`, string(body))
}

func TestPostRawTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url).PostRaw(context.Background(), "/x", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending request")
}

func TestWithTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := NewHTTPClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.PostRaw(context.Background(), "/slow", nil, nil)
	require.Error(t, err)
}

func TestWithHTTPClientNilIgnored(t *testing.T) {
	c := NewHTTPClient("https://api.kraken.com", WithHTTPClient(nil))
	require.NotNil(t, c.client)
	assert.Equal(t, "https://api.kraken.com/0/private/GetWebSocketsToken", c.URL("/0/private/GetWebSocketsToken"))
}
