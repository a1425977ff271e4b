package httpclient

import (
	"net"
	"net/http"
	"time"

	"catalog-tool/internal/config"
	"catalog-tool/internal/logging"
)

// NewClient builds the *http.Client used for catalog requests.
// cfg.Timeout() of zero leaves the client without an overall deadline.
func NewClient(cfg *config.Config) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	timeout := cfg.Timeout()
	if timeout > 0 {
		logging.Logf(logging.Debug, "HTTP client timeout set to %v", timeout)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
