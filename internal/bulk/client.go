// Package bulk indexes normalized events into an Elasticsearch-compatible
// document store via the OpenSearch client this module already depends on
// for connection management (spec.md §4.7-4.8, §6).
package bulk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/opensearch-project/opensearch-go/v2"
)

// Client wraps an *opensearch.Client with idempotent index creation and
// bulk submission tailored to normalized events.
type Client struct {
	os     *opensearch.Client
	logger *slog.Logger
}

// New builds a Client around an already-connected OpenSearch client.
func New(os *opensearch.Client, logger *slog.Logger) *Client {
	return &Client{os: os, logger: logger}
}

// Ping sends a liveness request (HEAD /) against the document store through
// the wrapped client. The request carries whatever credentials that client
// was configured with; it is not sent unauthenticated.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.os.Ping(c.os.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPingFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return &StatusCodeError{Code: res.StatusCode}
	}
	return nil
}

// IndexStatus is the outcome of EnsureIndexExists.
type IndexStatus int

const (
	IndexCreatedSuccessfully IndexStatus = iota
	IndexAlreadyExists
)

// EnsureIndexExists creates index with the given settings body if it does
// not already exist. A 400 response whose body contains the sentinel
// substring "resource_already_exists_exception" is treated as success
// (IndexAlreadyExists), making the call idempotent (spec.md §4.7, testable
// property 4).
func (c *Client) EnsureIndexExists(ctx context.Context, index string, settings json.RawMessage) (IndexStatus, error) {
	var body io.Reader
	if len(settings) > 0 {
		body = bytes.NewReader(settings)
	}

	res, err := c.os.Indices.Create(
		index,
		c.os.Indices.Create.WithContext(ctx),
		c.os.Indices.Create.WithBody(body),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEnsureIndexFailed, err)
	}
	defer res.Body.Close()

	if !res.IsError() {
		return IndexCreatedSuccessfully, nil
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEnsureIndexBodyRead, err)
	}
	if res.StatusCode == 400 && isResourceAlreadyExists(raw) {
		return IndexAlreadyExists, nil
	}
	return 0, &StatusCodeError{Code: res.StatusCode}
}

func isResourceAlreadyExists(body []byte) bool {
	return bytes.Contains(body, []byte("resource_already_exists_exception"))
}

// Submit sends ops as a single _bulk request against index and projects the
// response into a Status (spec.md §4.8). An empty ops is a no-op.
func (c *Client) Submit(ctx context.Context, index string, ops []Operation) (Status, error) {
	if len(ops) == 0 {
		return Status{}, nil
	}

	var buf bytes.Buffer
	for _, op := range ops {
		buf.Write(op.actionLine)
		buf.WriteByte('\n')
		if op.sourceLine != nil {
			buf.Write(op.sourceLine)
			buf.WriteByte('\n')
		}
	}

	res, err := c.os.Bulk(
		bytes.NewReader(buf.Bytes()),
		c.os.Bulk.WithContext(ctx),
		c.os.Bulk.WithIndex(index),
	)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %w", ErrBulkFailure, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return Status{}, &StatusCodeError{Code: res.StatusCode}
	}

	var wire bulkResponseWire
	if err := json.NewDecoder(res.Body).Decode(&wire); err != nil {
		return Status{}, fmt.Errorf("%w: %w", ErrBulkDecodeFailed, err)
	}

	return projectStatus(wire, c.logger), nil
}
