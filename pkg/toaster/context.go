package toaster

import (
	"context"

	terrors "github.com/vango-dev/toaster/internal/errors"
)

// ErrNotProvided matches the value Expect panics with.
var ErrNotProvided error = terrors.New("T001")

type contextKey struct{}

// Provide returns a context carrying t. If ctx already carries a Toaster,
// ctx is returned unchanged so the first installed registry stays in effect.
func Provide(ctx context.Context, t *Toaster) context.Context {
	if t == nil {
		return ctx
	}
	if _, ok := From(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, t)
}

// From returns the Toaster installed in ctx, if any.
func From(ctx context.Context) (*Toaster, bool) {
	if ctx == nil {
		return nil, false
	}
	t, ok := ctx.Value(contextKey{}).(*Toaster)
	return t, ok && t != nil
}

// Expect returns the Toaster installed in ctx. A missing registry is a setup
// bug, so Expect panics with a T001 error instead of returning one.
func Expect(ctx context.Context) *Toaster {
	t, ok := From(ctx)
	if !ok {
		panic(terrors.New("T001").
			WithSuggestion("Install a registry with toaster.Provide before rendering").
			WithExample("ctx = toaster.Provide(ctx, toaster.New())"))
	}
	return t
}
