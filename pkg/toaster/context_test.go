package toaster_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-dev/toaster/pkg/toaster"
)

func TestProvideOnce(t *testing.T) {
	first := toaster.New()
	second := toaster.New()

	ctx := toaster.Provide(context.Background(), first)
	again := toaster.Provide(ctx, second)

	assert.Same(t, first, toaster.Expect(again))
	got, ok := toaster.From(again)
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestProvideNilIsNoop(t *testing.T) {
	ctx := toaster.Provide(context.Background(), nil)
	_, ok := toaster.From(ctx)
	assert.False(t, ok)
}

func TestExpectPanicsWhenMissing(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, toaster.ErrNotProvided))
		assert.Contains(t, err.Error(), "Toaster not provided")
	}()

	toaster.Expect(context.Background())
	t.Fatal("Expect should have panicked")
}
