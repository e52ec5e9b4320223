package fluent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator_Apply(t *testing.T) {
	t.Run("applies functions in registration order", func(t *testing.T) {
		got, err := DecoratorFrom(2).
			With(func(x int) int { return x + 3 }).
			With(func(x int) int { return x * 10 }).
			Apply()

		require.NoError(t, err)
		assert.Equal(t, 50, got)
	})

	t.Run("identity without functions", func(t *testing.T) {
		got, err := DecoratorFrom("value").Apply()

		require.NoError(t, err)
		assert.Equal(t, "value", got)
	})

	t.Run("With leaves the receiver unchanged", func(t *testing.T) {
		base := DecoratorFrom("go").With(strings.ToUpper)
		loud := base.With(func(s string) string { return s + "!" })
		quiet := base.With(strings.ToLower)

		got, err := base.Apply()
		require.NoError(t, err)
		assert.Equal(t, "GO", got)

		got, err = loud.Apply()
		require.NoError(t, err)
		assert.Equal(t, "GO!", got)

		got, err = quiet.Apply()
		require.NoError(t, err)
		assert.Equal(t, "go", got)
	})

	t.Run("runs each function once per Apply", func(t *testing.T) {
		calls := 0
		d := DecoratorFrom(1).With(func(x int) int { calls++; return x })
		require.Zero(t, calls)

		_, err := d.Apply()
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero value decorator", func(t *testing.T) {
		var d Decorator[int]
		got, err := d.With(func(x int) int { return x + 1 }).Apply()

		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("nil subject", func(t *testing.T) {
		var p *person
		called := false
		_, err := DecoratorFrom(p).With(func(p *person) *person { called = true; return p }).Apply()

		assert.ErrorIs(t, err, ErrNilSubject)
		assert.False(t, called)
	})
}

func TestCompose(t *testing.T) {
	h := Compose(
		func(s string) string { return s + "a" },
		func(s string) string { return s + "b" },
	)
	assert.Equal(t, "xab", h("x"))
	assert.Equal(t, "x", Compose[string]()("x"))
}
