// Package environment provides simple helpers to propagate the current
// application environment (development, staging, production, etc.) through
// context.Context and structured logs.
//
// It defines the typed string alias Environment with predefined constants
// Development, Staging and Production. These values can be attached to a
// context using WithContext, extracted with FromContext and queried with the
// convenience predicates IsDevelopment, IsStaging and IsProduction.
//
// The package has no HTTP middleware of its own.
//
// For structured logging the package provides LoggerExtractor, which returns a
// context extractor function: given a context carrying an environment it
// yields a slog.Attr under the key "env", suitable for pkg/logger's
// WithContextExtractors option.
//
// # Usage
//
// Import the package:
//
//	import "github.com/architus-bot/logs-core/pkg/environment"
//
// Attach the environment to a context:
//
//	ctx = environment.WithContext(ctx, environment.Production)
//
// Retrieve the environment from a context:
//
//	env := environment.FromContext(ctx)
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// Add the environment to every record of a pkg/logger logger:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started")
//
// # Error Handling
//
// No helper returns an error. Missing values simply result in the zero
// value ("").
//
// See the function-level documentation for further details.
package environment
