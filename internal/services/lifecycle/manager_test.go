package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	m.Register("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	m.Register("second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})
	m.Register("third", func(context.Context) error {
		order = append(order, "third")
		return nil
	})

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestShutdownCollectsErrors(t *testing.T) {
	m := New(time.Second, nil)

	errDB := errors.New("db close failed")
	var laterRan bool
	m.Register("db", func(context.Context) error { return errDB })
	m.Register("server", func(context.Context) error {
		laterRan = true
		return nil
	})

	err := m.Shutdown(context.Background())
	assert.ErrorIs(t, err, errDB)
	assert.True(t, laterRan, "a failing hook must not stop the remaining hooks")
}

func TestShutdownIgnoresNilHooks(t *testing.T) {
	m := New(time.Second, nil)
	m.Register("noop", nil)

	assert.NoError(t, m.Shutdown(context.Background()))
}

func TestShutdownAppliesTimeout(t *testing.T) {
	m := New(10*time.Millisecond, nil)

	var deadlineSet bool
	m.Register("slow", func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return nil
	})

	require.NoError(t, m.Shutdown(nil))
	assert.True(t, deadlineSet)
}
