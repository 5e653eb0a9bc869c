package gateway

import (
	"errors"
	"fmt"

	"github.com/itchyny/gojq"
)

// Path is a compiled JSON query expression (spec.md §3 Path, §4.1). It is
// compiled once, at processor-registration time, and evaluated many times
// against different roots; evaluation itself is pure and side-effect free.
type Path struct {
	code     *gojq.Code
	expr     string
	required bool
}

// CompilePath compiles a path whose absence on a given root is an error
// (ErrPathUnresolved). Use this for fields the normalized schema requires.
func CompilePath(expr string) (*Path, error) {
	return compile(expr, true)
}

// CompileOptionalPath compiles a path whose absence on a given root simply
// yields the converter's zero value rather than an error.
func CompileOptionalPath(expr string) (*Path, error) {
	return compile(expr, false)
}

// MustCompilePath compiles a required path, panicking on a malformed
// expression. Intended for package-level var initialization, where a bad
// expression is a programming error that should fail fast at startup.
func MustCompilePath(expr string) *Path {
	p, err := CompilePath(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// MustCompileOptionalPath is the optional-path counterpart to
// MustCompilePath.
func MustCompileOptionalPath(expr string) *Path {
	p, err := CompileOptionalPath(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func compile(expr string, required bool) (*Path, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse path %q: %w", expr, err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("gateway: compile path %q: %w", expr, err)
	}
	return &Path{code: code, expr: expr, required: required}, nil
}

// Converter transforms the JSON leaf value a Path resolved into a typed
// result. It may consult ctx for ancillary data (e.g. the emoji dict) but
// must not mutate anything ctx points to (spec.md §4.1).
type Converter[T any] func(value any, ctx Context) (T, error)

var (
	// ErrPathUnresolved is returned when a required Path yields no value.
	ErrPathUnresolved = errors.New("gateway: path did not resolve to a value")
	// ErrConversionFailed wraps a Converter's own error.
	ErrConversionFailed = errors.New("gateway: path value conversion failed")
)

// Extract applies p to root and converts the first resolved leaf with
// convert (spec.md §4.1).
func Extract[T any](p *Path, root any, convert Converter[T], ctx Context) (T, error) {
	var zero T

	iter := p.code.Run(root)
	v, ok := iter.Next()
	if !ok || v == nil {
		if p.required {
			return zero, fmt.Errorf("%w: %s", ErrPathUnresolved, p.expr)
		}
		return zero, nil
	}
	if err, ok := v.(error); ok {
		return zero, fmt.Errorf("gateway: evaluate path %q: %w", p.expr, err)
	}

	result, err := convert(v, ctx)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}
	return result, nil
}
