package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProxy(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://proxy.example.com:8080", want: "http://proxy.example.com:8080"},
		{in: "proxy.example.com:3128", want: "http://proxy.example.com:3128"},
		{in: "socks5://127.0.0.1:1080", want: "socks5://127.0.0.1:1080"},
		{in: "ftp://proxy.example.com", wantErr: true},
		{in: "http://", wantErr: true},
		{in: "http://bad host:80", wantErr: true},
	}

	for _, tt := range tests {
		u, err := ParseProxy(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			assert.True(t, errors.Is(err, ErrInvalidProxy), tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, u.String())
	}
}

func TestNew_RejectsInvalidProxy(t *testing.T) {
	_, err := New(Options{Proxy: "gopher://x"})
	require.ErrorIs(t, err, ErrInvalidProxy)
}

func TestClient_DefaultUserAgentDoesNotOverrideRequest(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("User-Agent"))
	}))
	defer srv.Close()

	c, err := New(Options{Timeout: 2 * time.Second, MaxRedirects: 5, UserAgent: "configured/1.0"})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	req, err = http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "explicit/2.0")
	resp, err = c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"configured/1.0", "explicit/2.0"}, got)
}

func TestClient_RedirectLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hop/", func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/hop/"))
		if n == 0 {
			_, _ = w.Write([]byte("done"))
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/hop/%d", n-1), http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(Options{Timeout: 2 * time.Second, MaxRedirects: 5})
	require.NoError(t, err)

	// Five redirects are followed.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/hop/5", nil)
	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The sixth is not.
	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/hop/6", nil)
	_, err = c.Do(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after 5 redirects")
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, err := New(Options{Timeout: 50 * time.Millisecond, MaxRedirects: 5})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	_, err = c.Do(req)
	require.Error(t, err)
}
