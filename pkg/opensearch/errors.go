package opensearch

import "errors"

var (
	// ErrConnectionFailed indicates the OpenSearch client could not be created
	// from its configuration. Returned by New(); use errors.Is() to check.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	// Returned by Healthcheck(); New() performs no health check.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
