package loaders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(v any) Symbol {
	return func(ctx context.Context, args ...any) (any, error) {
		return v, nil
	}
}

func TestRegister(t *testing.T) {
	t.Cleanup(Clear)
	Clear()

	require.NoError(t, Register("pkg/mod:One", value(1)))
	assert.Equal(t, 1, Count())

	t.Run("duplicate target", func(t *testing.T) {
		assert.Error(t, Register("pkg/mod:One", value(2)))
	})

	t.Run("nil symbol", func(t *testing.T) {
		assert.Error(t, Register("pkg/mod:Nil", nil))
	})
}

func TestLookup(t *testing.T) {
	t.Cleanup(Clear)
	Clear()

	require.NoError(t, Register("pkg/mod:One", value(1)))

	fn, ok := Lookup("pkg/mod:One")
	require.True(t, ok)
	result, err := fn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result)

	_, ok = Lookup("pkg/mod:Missing")
	assert.False(t, ok)
}

func TestUnregister(t *testing.T) {
	t.Cleanup(Clear)
	Clear()

	require.NoError(t, Register("pkg/mod:One", value(1)))
	require.NoError(t, Unregister("pkg/mod:One"))
	assert.Equal(t, 0, Count())

	assert.Error(t, Unregister("pkg/mod:One"))
}

func TestSymbolTable_Load(t *testing.T) {
	t.Cleanup(Clear)
	Clear()

	wantErr := errors.New("symbol failed")
	require.NoError(t, Register("pkg/mod:Greet", func(ctx context.Context, args ...any) (any, error) {
		if len(args) == 0 {
			return nil, wantErr
		}
		return "hello " + args[0].(string), nil
	}))

	table := SymbolTable{}

	result, err := table.Load(context.Background(), "pkg/mod:Greet", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", result)

	t.Run("symbol errors propagate", func(t *testing.T) {
		_, err := table.Load(context.Background(), "pkg/mod:Greet")
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := table.Load(context.Background(), "pkg/mod:Missing")
		assert.Error(t, err)
	})
}

func TestLoaderFunc(t *testing.T) {
	loader := LoaderFunc(func(ctx context.Context, target string, args ...any) (any, error) {
		return target, nil
	})

	result, err := loader.Load(context.Background(), "pkg/mod:Echo")

	require.NoError(t, err)
	assert.Equal(t, "pkg/mod:Echo", result)
}
