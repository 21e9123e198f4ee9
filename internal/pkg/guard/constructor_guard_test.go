package guard_test

import (
	"errors"
	"testing"

	"pedidos/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("order not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// Demonstrates the intended embedding pattern: a zero-value command fails
// validation, a constructed one passes.
func TestConstructorGuardEmbedding(t *testing.T) {
	type command struct {
		orderNumber string
		guard       guard.ConstructorGuard
	}

	errNotConstructed := errors.New("command must be created via its constructor")

	newCommand := func(number string) (command, error) {
		if number == "" {
			return command{}, errors.New("order number is required")
		}
		return command{orderNumber: number, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newCommand("PED-2025-05-00001")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_command_is_rejected", func(t *testing.T) {
		var cmd command

		err := cmd.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
