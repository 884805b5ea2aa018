package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wsproto/websocket/internal/test/assert"
)

func upgradeRequest() *http.Request {
	r := httptest.NewRequest("GET", "/ws", nil)
	r.Header.Set("Connection", "Upgrade")
	r.Header.Set("Upgrade", "websocket")
	r.Header.Set("Sec-WebSocket-Version", "13")
	r.Header.Set("Sec-WebSocket-Key", sampleKey)
	return r
}

func TestHTTPRequestHead(t *testing.T) {
	t.Parallel()

	t.Run("validUpgrade", func(t *testing.T) {
		t.Parallel()

		hs, err := ValidateUpgrade(HTTPRequestHead(upgradeRequest()))
		assert.Success(t, err)
		if hs == nil {
			t.Fatal("expected a handshake")
		}
		assert.Equal(t, "accept token", secWebSocketAccept([]byte(sampleKey)), hs.Accept)
	})

	t.Run("plainHTTP", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		hs, err := ValidateUpgrade(HTTPRequestHead(r))
		assert.Success(t, err)
		if hs != nil {
			t.Fatalf("expected nil handshake but got %+v", hs)
		}
	})

	t.Run("multipleConnectionLines", func(t *testing.T) {
		t.Parallel()

		r := upgradeRequest()
		r.Header.Del("Connection")
		r.Header.Add("Connection", "keep-alive")
		r.Header.Add("Connection", "Upgrade")

		hs, err := ValidateUpgrade(HTTPRequestHead(r))
		assert.Success(t, err)
		if hs == nil {
			t.Fatal("expected a handshake")
		}
	})

	t.Run("protocolsAccumulate", func(t *testing.T) {
		t.Parallel()

		r := upgradeRequest()
		r.Header.Add("Sec-WebSocket-Protocol", "chat, superchat")
		r.Header.Add("Sec-WebSocket-Protocol", "binary")

		hs, err := ValidateUpgrade(HTTPRequestHead(r))
		assert.Success(t, err)
		assert.Equal(t, "protocols", []string{"chat", "superchat", "binary"}, hs.Protocols)
	})

	t.Run("declaredBody", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/ws", strings.NewReader("payload"))
		r.Header.Set("Connection", "Upgrade")
		r.Header.Set("Upgrade", "websocket")
		r.Header.Set("Sec-WebSocket-Version", "13")
		r.Header.Set("Sec-WebSocket-Key", sampleKey)

		_, err := ValidateUpgrade(HTTPRequestHead(r))
		assert.ErrorIs(t, ErrUnexpectedBody, err)
	})

	t.Run("chunkedBody", func(t *testing.T) {
		t.Parallel()

		r := upgradeRequest()
		r.ContentLength = -1

		_, err := ValidateUpgrade(HTTPRequestHead(r))
		assert.ErrorIs(t, ErrUnexpectedBody, err)
	})

	t.Run("missingTarget", func(t *testing.T) {
		t.Parallel()

		r := upgradeRequest()
		r.RequestURI = ""
		r.URL = nil

		_, err := ValidateUpgrade(HTTPRequestHead(r))
		assert.ErrorIs(t, ErrInvalidTarget, err)
	})

	t.Run("target", func(t *testing.T) {
		t.Parallel()

		target, ok := HTTPRequestHead(upgradeRequest()).Target()
		assert.Equal(t, "target ok", true, ok)
		assert.Equal(t, "target", "/ws", target)
	})
}
