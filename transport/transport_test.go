package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	body, err := New().Get(context.Background(), server.URL, nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestGetMergesQuery(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	query := url.Values{}
	query.Set("dates", "20240115")
	query.Set("limit", "50")
	_, err := New().Get(context.Background(), server.URL+"/scoreboard?lang=en", query, nil)
	require.NoError(t, err)

	assert.Equal(t, "20240115", got.Get("dates"))
	assert.Equal(t, "50", got.Get("limit"))
	assert.Equal(t, "en", got.Get("lang"), "query already on the URL survives the merge")
}

func TestGetSendsHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	transport := New(WithHeader("X-Custom", "default"))

	perCall := http.Header{}
	perCall.Set("Cookie", "SWID=abc; espn_s2=def")
	_, err := transport.Get(context.Background(), server.URL, nil, perCall)
	require.NoError(t, err)

	assert.Equal(t, defaultUserAgent, got.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "default", got.Get("X-Custom"))
	assert.Equal(t, "SWID=abc; espn_s2=def", got.Get("Cookie"))
}

func TestPerCallHeaderOverridesDefault(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	perCall := http.Header{}
	perCall.Set("User-Agent", "custom/2.0")
	_, err := New().Get(context.Background(), server.URL, nil, perCall)
	require.NoError(t, err)
	assert.Equal(t, "custom/2.0", got)
}

func TestNon2xxIsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))
	defer server.Close()

	_, err := New().Get(context.Background(), server.URL, nil, nil)
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusNotFound, serr.Code)
	assert.Equal(t, "not found", serr.Body)
	assert.False(t, IsTimeout(err))
}

func TestStatusErrorBodyIsTruncated(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write(long)
	}))
	defer server.Close()

	_, err := New().Get(context.Background(), server.URL, nil, nil)
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Len(t, serr.Body, 200)
}

func TestTimeoutIsDetectable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := New().Get(ctx, server.URL, nil, nil)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestIsTimeoutOnPlainErrors(t *testing.T) {
	assert.False(t, IsTimeout(errors.New("boom")))
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(context.Canceled))
}

func TestBadURL(t *testing.T) {
	_, err := New().Get(context.Background(), "://not-a-url", nil, nil)
	require.Error(t, err)
}
