package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_DispatchGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/test", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message": "hello"}`))
	}))
	defer server.Close()

	cmd, err := parser.ParseGet(server.URL + "/test")
	require.NoError(t, err)

	client := NewClient()
	resp, err := client.Dispatch(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "HTTP/1.1 200 OK", resp.StatusLine())
	assert.Equal(t, "application/json", resp.Header("Content-Type"))
	assert.Contains(t, resp.BodyString(), "hello")
}

func TestClient_DispatchPost(t *testing.T) {
	var got []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		got, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 123}`))
	}))
	defer server.Close()

	cmd, err := parser.ParsePost(server.URL, []string{"foo=bar"})
	require.NoError(t, err)

	resp, err := NewClient().Dispatch(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, `{"foo":"bar"}`, string(got))
	assert.Contains(t, resp.BodyString(), "123")
}

func TestClient_DispatchPostDuplicateKeys(t *testing.T) {
	var got []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cmd, err := parser.ParsePost(server.URL, []string{"a=1", "a=2"})
	require.NoError(t, err)

	_, err = NewClient().Dispatch(context.Background(), cmd)

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2"}`, string(got))
}

func TestClient_DefaultHeadersOnEveryCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PoweredByValue, r.Header.Get(HeaderPoweredBy))
		assert.Equal(t, UserAgent, r.Header.Get(HeaderUserAgent))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	get, err := parser.ParseGet(server.URL)
	require.NoError(t, err)
	post, err := parser.ParsePost(server.URL, []string{"a=1"})
	require.NoError(t, err)

	for _, cmd := range []parser.Command{get, post} {
		resp, err := client.Dispatch(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}
}

func TestClient_WithDefaultHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithDefaultHeader("Authorization", "test-token"))
	resp, err := client.Do(context.Background(), NewRequest("GET", server.URL))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer server.Close()

	cmd, err := parser.ParseGet(server.URL)
	require.NoError(t, err)

	resp, err := NewClient().Dispatch(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, "HTTP/1.1 404 Not Found", resp.StatusLine())
}

func TestClient_WithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithTimeout(50 * time.Millisecond))
	_, err := client.Do(context.Background(), NewRequest("GET", server.URL))

	require.Error(t, err)
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestClient_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cmd, err := parser.ParseGet("http://" + addr)
	require.NoError(t, err)

	_, err = NewClient().Dispatch(context.Background(), cmd)

	require.Error(t, err)
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "GET", transportErr.Method)
	assert.Contains(t, err.Error(), addr)
}

func TestClient_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient().Do(ctx, NewRequest("GET", server.URL))

	require.Error(t, err)
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestBuildRequest(t *testing.T) {
	get, err := BuildRequest(&parser.Get{URL: "http://abc.xyz"})
	require.NoError(t, err)
	assert.Equal(t, "GET", get.Method)
	assert.Nil(t, get.Body)
	assert.Empty(t, get.Headers)

	post, err := BuildRequest(&parser.Post{URL: "http://abc.xyz", Pairs: []parser.KeyValue{{Key: "b", Value: ""}}})
	require.NoError(t, err)
	assert.Equal(t, "POST", post.Method)
	assert.Equal(t, `{"b":""}`, string(post.Body))
	assert.Equal(t, "application/json", post.Headers["Content-Type"])
}

func TestBuildRequest_EmptyPostStillSendsObject(t *testing.T) {
	post, err := BuildRequest(&parser.Post{URL: "http://abc.xyz"})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(post.Body))
}
