package helpers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNavigationErr(t *testing.T) {
	t.Run("redirect loop gets a configuration hint", func(t *testing.T) {
		loopErr := errors.New("net::ERR_TOO_MANY_REDIRECTS at http://localhost:8080/login")
		wrapped := wrapNavigationErr("http://localhost:8080/dashboard", loopErr)
		require.Error(t, wrapped)
		assert.Contains(t, wrapped.Error(), "check BASE_URL port")
		assert.Contains(t, wrapped.Error(), "http://localhost:8080/dashboard")
		assert.ErrorIs(t, wrapped, loopErr)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		plainErr := errors.New("net::ERR_CONNECTION_REFUSED")
		assert.Equal(t, plainErr, wrapNavigationErr("http://localhost:8080/", plainErr))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, wrapNavigationErr("http://localhost:8080/", nil))
	})
}
