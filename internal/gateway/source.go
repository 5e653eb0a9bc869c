package gateway

import "golang.org/x/sync/errgroup"

// Source is a named, composable field producer (spec.md §4.2). The
// constructors below (Constant, GatewayPath, AuditLogPath, FromFunc, Map,
// Join) build every variant this package uses, so their semantics live in
// one place. Source itself is an ordinary interface: any type with a
// matching Consume method also satisfies it.
type Source[T any] interface {
	Consume(ctx Context) (T, error)
}

type constantSource[T any] struct{ value T }

// Constant always yields the same value, regardless of ctx.
func Constant[T any](v T) Source[T] { return constantSource[T]{value: v} }

func (s constantSource[T]) Consume(Context) (T, error) { return s.value, nil }

type gatewayPathSource[T any] struct {
	path    *Path
	convert Converter[T]
}

// GatewayPath sources T by applying path to the event's own JSON payload.
func GatewayPath[T any](path *Path, convert Converter[T]) Source[T] {
	return gatewayPathSource[T]{path: path, convert: convert}
}

func (s gatewayPathSource[T]) Consume(ctx Context) (T, error) {
	return FromGateway(ctx, s.path, s.convert)
}

type auditLogPathSource[T any] struct {
	path    *Path
	convert Converter[T]
}

// AuditLogPath sources T from the captured audit log entry's JSON
// projection, blocking on the owning SplitProcessor's write-before-read
// latch until it is installed.
func AuditLogPath[T any](path *Path, convert Converter[T]) Source[T] {
	return auditLogPathSource[T]{path: path, convert: convert}
}

func (s auditLogPathSource[T]) Consume(ctx Context) (T, error) {
	return FromAuditLog(ctx, s.path, s.convert)
}

type funcSource[T any] struct{ f func(Context) (T, error) }

// FromFunc wraps an arbitrary function as a Source — an escape hatch for
// fields derived from the Event itself (e.g. its own timestamp) rather
// than from a Path.
func FromFunc[T any](f func(Context) (T, error)) Source[T] {
	return funcSource[T]{f: f}
}

func (s funcSource[T]) Consume(ctx Context) (T, error) { return s.f(ctx) }

type mapSource[T, U any] struct {
	sub Source[T]
	f   func(T) (U, error)
}

// Map transforms the result of sub with f.
func Map[T, U any](sub Source[T], f func(T) (U, error)) Source[U] {
	return mapSource[T, U]{sub: sub, f: f}
}

func (s mapSource[T, U]) Consume(ctx Context) (U, error) {
	var zero U
	v, err := s.sub.Consume(ctx)
	if err != nil {
		return zero, err
	}
	return s.f(v)
}

type joinSource[A, B, T any] struct {
	a Source[A]
	b Source[B]
	f func(A, B) (T, error)
}

// Join runs a and b concurrently and combines their results with f. Either
// child's error aborts the join; the error of whichever finishes first
// among a failing pair wins (spec.md §4.2).
func Join[A, B, T any](a Source[A], b Source[B], f func(A, B) (T, error)) Source[T] {
	return joinSource[A, B, T]{a: a, b: b, f: f}
}

func (s joinSource[A, B, T]) Consume(ctx Context) (T, error) {
	var zero T
	var va A
	var vb B

	g, _ := errgroup.WithContext(ctx.Ctx)
	g.Go(func() error {
		v, err := s.a.Consume(ctx)
		va = v
		return err
	})
	g.Go(func() error {
		v, err := s.b.Consume(ctx)
		vb = v
		return err
	})
	if err := g.Wait(); err != nil {
		return zero, err
	}
	return s.f(va, vb)
}
