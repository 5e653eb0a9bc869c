// Package opensearch provides a lightweight wrapper around the official OpenSearch
// Go client adding type-safe configuration, an explicit cluster health check,
// and standardized error values.
//
// The package is designed for concurrent applications. It builds on top of
// github.com/opensearch-project/opensearch-go/v2 which is thread-safe by
// design. Beyond the underlying client, the package focuses on three public
// touch points:
//
//   - Config – declarative representation of connection settings that can be
//     populated from environment variables via github.com/architus-bot/logs-core/pkg/config.
//
//   - New – constructs an *opensearch.Client instance. Returning a non-error
//     client does not by itself guarantee the cluster is reachable; call
//     Healthcheck (or the bulk client's Ping) to confirm that.
//
//   - Healthcheck – returns a function suitable for liveness / readiness probes
//     (for example in HTTP /health endpoints).
//
// Errors specific to connectivity are exposed as ErrConnectionFailed and
// ErrHealthcheckFailed so that callers can distinguish infrastructure problems
// from business logic errors.
//
// # Usage
//
// Basic connection:
//
//	import (
//	    "context"
//	    "github.com/architus-bot/logs-core/pkg/opensearch"
//	)
//
//	client, err := opensearch.New(context.Background(), opensearch.Config{
//	    Addresses: []string{"https://localhost:9200"},
//	    Username:  "admin",
//	    Password:  "admin",
//	})
//	if err != nil {
//	    // use errors.Is(err, opensearch.ErrConnectionFailed)
//	}
//
//	info, _ := client.Info()
//
// Environment-based configuration:
//
//	import (
//	    "context"
//	    "github.com/architus-bot/logs-core/pkg/config"
//	    "github.com/architus-bot/logs-core/pkg/opensearch"
//	)
//
//	var cfg opensearch.Config
//	_ = config.Load(&cfg)
//	client, _ := opensearch.New(context.Background(), cfg)
//
// # Error Handling
//
// Use the standard errors.Is / errors.As helpers to check for sentinel errors:
//
//	if err := opensearch.Healthcheck(client)(ctx); err != nil {
//	    if errors.Is(err, opensearch.ErrHealthcheckFailed) {
//	        // handle health-check failure
//	    }
//	}
//
// # Performance Considerations
//
// The MaxRetries and DisableRetry fields in Config map directly to the
// opensearch-go/v2 client and should be tuned according to the latency and
// reliability of your network.
package opensearch
