package gateway

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// proxy forwards already-validated requests to the business tier,
// preserving method, path, query, body and the user header.
type proxy struct {
	serverURL string
	client    *http.Client
	logger    zerolog.Logger
}

func newProxy(serverURL string, logger zerolog.Logger) *proxy {
	return &proxy{
		serverURL: serverURL,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

// forward replays the request against the server and copies the response
// back verbatim. body may be nil; when set it replaces the (already
// consumed) request body.
func (p *proxy) forward(w http.ResponseWriter, r *http.Request, body []byte) {
	target := p.serverURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else if r.Body != nil {
		reader = r.Body
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, reader)
	if err != nil {
		p.logger.Error().Err(err).Str("target", target).Msg("failed to build upstream request")
		writeErrorMessage(w, http.StatusBadGateway, "Bad Gateway", "upstream request failed")
		return
	}
	if v := r.Header.Get("Content-Type"); v != "" {
		req.Header.Set("Content-Type", v)
	}
	if v := r.Header.Get(userHeader); v != "" {
		req.Header.Set(userHeader, v)
	}
	if v := r.Header.Get(requestIDHeader); v != "" {
		req.Header.Set(requestIDHeader, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error().Err(err).Str("target", target).Msg("upstream request failed")
		writeErrorMessage(w, http.StatusBadGateway, "Bad Gateway", "upstream request failed")
		return
	}
	defer resp.Body.Close()

	if v := resp.Header.Get("Content-Type"); v != "" {
		w.Header().Set("Content-Type", v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}
