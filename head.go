package websocket

import (
	"net/http"
	"strings"
)

// HTTPRequestHead adapts a net/http server request into the
// RequestHead view consumed by ValidateUpgrade:
//
//	hs, err := websocket.ValidateUpgrade(websocket.HTTPRequestHead(r))
//
// The request is only read, never modified.
func HTTPRequestHead(r *http.Request) RequestHead {
	return httpRequestHead{r}
}

type httpRequestHead struct {
	r *http.Request
}

func (h httpRequestHead) ConnectionHeader() (string, bool) {
	vs := h.r.Header.Values("Connection")
	if len(vs) == 0 {
		return "", false
	}
	// Multiple Connection field lines collapse into one list value.
	return strings.Join(vs, ", "), true
}

func (h httpRequestHead) Headers() []Header {
	var headers []Header
	for name, vs := range h.r.Header {
		for _, v := range vs {
			headers = append(headers, Header{Name: name, Value: []byte(v)})
		}
	}
	return headers
}

func (h httpRequestHead) Target() (string, bool) {
	if h.r.RequestURI != "" {
		return h.r.RequestURI, true
	}
	if h.r.URL != nil {
		return h.r.URL.RequestURI(), true
	}
	return "", false
}

func (h httpRequestHead) HasBody() bool {
	// -1 means a body of unknown length, e.g. chunked.
	return h.r.ContentLength != 0
}
