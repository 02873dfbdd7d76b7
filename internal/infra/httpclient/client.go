package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrInvalidProxy = errors.New("invalid proxy url")

type Options struct {
	Timeout      time.Duration
	MaxRedirects int
	Proxy        string
	UserAgent    string
}

type Client struct {
	c *http.Client
}

func New(opts Options) (*Client, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()

	if opts.Proxy != "" {
		u, err := ParseProxy(opts.Proxy)
		if err != nil {
			return nil, err
		}
		tr.Proxy = http.ProxyURL(u)
	}

	limit := opts.MaxRedirects
	return &Client{c: &http.Client{
		Timeout:   opts.Timeout,
		Transport: &userAgentTransport{base: tr, userAgent: opts.UserAgent},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > limit {
				return fmt.Errorf("stopped after %d redirects", limit)
			}
			return nil
		},
	}}, nil
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.c.Do(req)
}

// ParseProxy accepts "scheme://host:port" or a bare "host:port", which is
// treated as an http proxy.
func ParseProxy(raw string) (*url.URL, error) {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidProxy, raw, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "socks5", "socks5h":
	default:
		return nil, fmt.Errorf("%w %q: unsupported scheme %q", ErrInvalidProxy, raw, u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w %q: missing host", ErrInvalidProxy, raw)
	}

	return u, nil
}

// userAgentTransport fills in a default User-Agent; a header already set on
// the request is left alone.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
