package envsubst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	t.Run("substitutes known keys", func(t *testing.T) {
		assert := assert.New(t)
		require := require.New(t)

		s, err := Replace(
			`{"code": "${CODE}", "discount": ${DISCOUNT}}`,
			map[string]string{
				"CODE":     "SAVE10",
				"DISCOUNT": "0.1",
			},
		)
		require.NoError(err)
		assert.Equal(`{"code": "SAVE10", "discount": 0.1}`, s)
	})

	t.Run("leaves escaped placeholders alone", func(t *testing.T) {
		assert := assert.New(t)
		require := require.New(t)

		s, err := Replace(
			"cost is $${PRICE}",
			map[string]string{"PRICE": "10"},
		)
		require.NoError(err)
		assert.Equal("cost is ${PRICE}", s)
	})

	t.Run("reports unknown keys", func(t *testing.T) {
		assert := assert.New(t)
		require := require.New(t)

		s, err := Replace("${B} and ${A}", map[string]string{})
		require.Error(err)
		assert.Equal(" and ", s)

		var keyErr *KeyError
		require.ErrorAs(err, &keyErr)
		assert.Equal([]string{"A", "B"}, keyErr.MissingKeys())
	})

	t.Run("passes plain text through", func(t *testing.T) {
		assert := assert.New(t)

		s, err := Replace("no placeholders here", nil)
		assert.NoError(err)
		assert.Equal("no placeholders here", s)
	})
}
