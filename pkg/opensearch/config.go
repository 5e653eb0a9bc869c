package opensearch

// Config holds document store connection parameters with environment variable mapping.
// Uses struct tags compatible with github.com/architus-bot/logs-core/pkg/config for
// zero-config environment-based initialization.
//
// Username and Password are optional: an empty Username means the cluster is
// addressed unauthenticated.
type Config struct {
	Addresses    []string `env:"DOCUMENT_STORE_ADDRESSES,required"`
	Username     string   `env:"DOCUMENT_STORE_USERNAME" envDefault:""`
	Password     string   `env:"DOCUMENT_STORE_PASSWORD" envDefault:""`
	MaxRetries   int      `env:"DOCUMENT_STORE_MAX_RETRIES" envDefault:"3"`
	DisableRetry bool     `env:"DOCUMENT_STORE_DISABLE_RETRY" envDefault:"false"`
}
