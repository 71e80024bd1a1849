package utils

import (
	"net"
	"net/http"
	"time"
)

type HTTPClientConfig struct {
	Timeout   time.Duration
	UserAgent string
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type GrabHTTPClient struct {
	client *http.Client
	config HTTPClientConfig
}

// NewGrabHTTPClient bounds connection setup and the wait for response headers
// by cfg.Timeout. Callers guard body reads with an IdleReader.
func NewGrabHTTPClient(cfg HTTPClientConfig) *GrabHTTPClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultDownloadTimeout
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   cfg.Timeout,
		ResponseHeaderTimeout: cfg.Timeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          10,
	}
	return &GrabHTTPClient{
		client: &http.Client{Transport: transport},
		config: cfg,
	}
}

func (g *GrabHTTPClient) Timeout() time.Duration {
	return g.config.Timeout
}

func (g *GrabHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if g.config.UserAgent != "" {
		req.Header.Set("User-Agent", g.config.UserAgent)
	} else {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}
	return g.client.Do(req)
}
