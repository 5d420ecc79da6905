package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCode(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		for _, n := range []int{1, 8, 20, 64} {
			code, err := KeyCode(n)
			require.NoError(t, err)
			assert.Len(t, code, n)
		}
	})

	t.Run("charset", func(t *testing.T) {
		code, err := KeyCode(200)
		require.NoError(t, err)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(keyCharset, r), "unexpected rune %q", r)
		}
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "l")
	})

	t.Run("unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			code, err := KeyCode(20)
			require.NoError(t, err)
			_, ok := seen[code]
			require.False(t, ok, "duplicate key code %q", code)
			seen[code] = struct{}{}
		}
	})
}
