package sigsci_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sigsci "github.com/tphakala/go-sigsci"
)

func TestCorpService_List(t *testing.T) {
	t.Run("yields each corp from a bare array", func(t *testing.T) {
		client, _ := setupAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/corps", r.URL.Path)
			_, err := w.Write([]byte(`[{"id": 1, "name": "acme"}]`))
			assert.NoError(t, err)
		})

		var seen []*sigsci.Corp
		for corp, err := range client.Corps.List(context.Background()) {
			require.NoError(t, err)
			seen = append(seen, corp)
		}

		require.Len(t, seen, 1)
		assert.Equal(t, "acme", seen[0].Name)
	})

	t.Run("yields each corp from a data envelope", func(t *testing.T) {
		client, _ := setupAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"data": [
				{"name": "acme", "displayName": "Acme Corp", "plan": "enterprise"},
				{"name": "globex", "displayName": "Globex"}
			]}`))
			assert.NoError(t, err)
		})

		corps, err := sigsci.Collect(client.Corps.List(context.Background()))
		require.NoError(t, err)

		require.Len(t, corps, 2)
		assert.Equal(t, "acme", corps[0].Name)
		assert.Equal(t, "Acme Corp", corps[0].DisplayName)
		assert.Equal(t, "enterprise", corps[0].Plan)
		assert.Equal(t, "globex", corps[1].Name)
	})

	t.Run("handles empty collection", func(t *testing.T) {
		client, _ := setupAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"data": []}`))
			assert.NoError(t, err)
		})

		corps, err := sigsci.Collect(client.Corps.List(context.Background()))
		require.NoError(t, err)
		assert.Empty(t, corps)
	})

	t.Run("propagates authentication error", func(t *testing.T) {
		client, _ := setupAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := sigsci.Collect(client.Corps.List(context.Background()))
		require.Error(t, err)

		var authErr *sigsci.AuthenticationError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("propagates API error", func(t *testing.T) {
		client, _ := setupAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := sigsci.Collect(client.Corps.List(context.Background()))
		require.Error(t, err)

		var apiErr *sigsci.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		client, _ := setupAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"data": [{"name": "acme"}, {"name": "globex"}]}`))
			assert.NoError(t, err)
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var seen int
		var lastErr error
		for _, err := range client.Corps.List(ctx) {
			if err != nil {
				lastErr = err
				break
			}
			seen++
			cancel()
		}

		assert.Equal(t, 1, seen)
		require.ErrorIs(t, lastErr, context.Canceled)
	})
}
