package opensearch

import (
	"context"
	"errors"

	"github.com/opensearch-project/opensearch-go/v2"
)

// New creates a new document store client.
//
// Returning a non-error client does not guarantee the remote cluster is
// reachable; callers must invoke Healthcheck (or the bulk client's Ping)
// before trusting the connection (see cmd/gateway-normalize's startup
// sequence).
func New(_ context.Context, cfg Config) (*opensearch.Client, error) {
	ocfg := opensearch.Config{
		Addresses:    cfg.Addresses,
		Username:     cfg.Username,
		Password:     cfg.Password,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.DisableRetry,
	}
	client, err := opensearch.NewClient(ocfg)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	return client, nil
}
