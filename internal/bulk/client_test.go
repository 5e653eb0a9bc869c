package bulk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOSClient(t *testing.T, srv *httptest.Server) *opensearch.Client {
	t.Helper()
	client, err := opensearch.NewClient(opensearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client
}

func TestClient_Ping_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(newTestOSClient(t, srv), discardLogger())
	assert.NoError(t, c.Ping(context.Background()))
}

func TestClient_Ping_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(newTestOSClient(t, srv), discardLogger())
	err := c.Ping(context.Background())
	require.Error(t, err)
	var statusErr *StatusCodeError
	assert.ErrorAs(t, err, &statusErr)
}

func TestClient_EnsureIndexExists_CreatedSuccessfully(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"acknowledged":true}`))
	}))
	defer srv.Close()

	c := New(newTestOSClient(t, srv), discardLogger())
	status, err := c.EnsureIndexExists(context.Background(), "events", nil)
	require.NoError(t, err)
	assert.Equal(t, IndexCreatedSuccessfully, status)
}

func TestClient_EnsureIndexExists_AlreadyExistsIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"resource_already_exists_exception","reason":"index already exists"}}`))
	}))
	defer srv.Close()

	c := New(newTestOSClient(t, srv), discardLogger())
	status, err := c.EnsureIndexExists(context.Background(), "events", nil)
	require.NoError(t, err)
	assert.Equal(t, IndexAlreadyExists, status)
}

func TestClient_EnsureIndexExists_OtherErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"type":"internal_server_error"}}`))
	}))
	defer srv.Close()

	c := New(newTestOSClient(t, srv), discardLogger())
	_, err := c.EnsureIndexExists(context.Background(), "events", nil)
	require.Error(t, err)
	var statusErr *StatusCodeError
	assert.ErrorAs(t, err, &statusErr)
}

func TestClient_Submit_EmptyOpsIsNoop(t *testing.T) {
	c := New(nil, discardLogger())
	status, err := c.Submit(context.Background(), "events", nil)
	require.NoError(t, err)
	assert.Equal(t, Status{}, status)
}

func TestClient_Submit_ProjectsBulkResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.Contains(r.URL.Path, "_bulk"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"took":3,"errors":false,"items":[{"create":{"_index":"events","_id":"1","status":201}}]}`))
	}))
	defer srv.Close()

	c := New(newTestOSClient(t, srv), discardLogger())
	op, err := Create("1", map[string]string{"body": "hi"})
	require.NoError(t, err)

	status, err := c.Submit(context.Background(), "events", []Operation{op})
	require.NoError(t, err)
	assert.Equal(t, 3, status.Took)
	require.Len(t, status.Items, 1)
	assert.Equal(t, "create", status.Items[0].Action)
	assert.Equal(t, "1", status.Items[0].ID)
}

func TestClient_Submit_TransportErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(newTestOSClient(t, srv), discardLogger())
	op, err := Delete("1")
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), "events", []Operation{op})
	require.Error(t, err)
}
