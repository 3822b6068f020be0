// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roshkjr/pdbefetch/pkg/types"
)

func TestNewClientAppliesTimeout(t *testing.T) {
	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestNewClientDefaultTimeout(t *testing.T) {
	client := NewClient(types.HTTPConfig{})
	assert.Equal(t, DefaultTimeout, client.Timeout)
}

func TestGetSetsUserAgent(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	resp, err := Get(ts.Client(), ts.URL, "pdbefetch/0.1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pdbefetch/0.1", gotUA)
}

func TestGetNeverRetries(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	resp, err := Get(ts.Client(), ts.URL, "")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetInvalidURL(t *testing.T) {
	_, err := Get(http.DefaultClient, "://not-a-url", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating request")
}

func TestGetTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := Get(&http.Client{Timeout: time.Second}, url, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request")
}
