package connector_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sigsci "github.com/tphakala/go-sigsci"
	"github.com/tphakala/go-sigsci/connector"
)

// setupConnector starts a test server mocking the vendor API with one
// corp, two users, and one cloud WAF instance, and returns an execution
// context wired to it.
func setupConnector(t *testing.T) (*connector.ExecutionContext, *connector.InMemoryJobState) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth", func(w http.ResponseWriter, r *http.Request) {
		err := json.NewEncoder(w).Encode(map[string]string{"token": "test-token"})
		assert.NoError(t, err)
	})
	mux.HandleFunc("/corps", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"data": [{"name": "acme", "displayName": "Acme Corp"}]}`))
		assert.NoError(t, err)
	})
	mux.HandleFunc("/corps/acme/users", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"data": [
			{"name": "Jane Doe", "email": "jane@acme.example", "role": "owner"},
			{"name": "John Roe", "email": "john@acme.example", "role": "user"}
		]}`))
		assert.NoError(t, err)
	})
	mux.HandleFunc("/corps/acme/cloudwafInstances", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"data": [
			{"id": "cwaf-123", "name": "edge-waf", "workspaceConfigs": [{"siteName": "s1"}]}
		]}`))
		assert.NoError(t, err)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := sigsci.NewClient(
		sigsci.WithBaseURL(server.URL),
		sigsci.WithCredentials("user@example.com", "hunter2"),
	)
	require.NoError(t, err)

	state := connector.NewInMemoryJobState()
	return &connector.ExecutionContext{Client: client, State: state}, state
}

func TestSteps_Definitions(t *testing.T) {
	steps := connector.Steps()
	require.Len(t, steps, 3)

	byID := make(map[string]*connector.Step, len(steps))
	for _, step := range steps {
		byID[step.ID] = step
	}

	corps := byID[connector.StepFetchCorps]
	require.NotNil(t, corps)
	assert.Empty(t, corps.DependsOn)
	assert.Equal(t, []string{connector.EntityTypeCorp}, corps.EntityTypes)

	users := byID[connector.StepFetchUsers]
	require.NotNil(t, users)
	assert.Equal(t, []string{connector.StepFetchCorps}, users.DependsOn)
	assert.Equal(t, []string{connector.RelationshipTypeCorpHasUser}, users.RelationshipTypes)

	waf := byID[connector.StepFetchCloudWAFInstances]
	require.NotNil(t, waf)
	assert.Equal(t, []string{connector.StepFetchCorps}, waf.DependsOn)
	assert.Equal(t, []string{connector.EntityTypeCloudWAF}, waf.EntityTypes)
}

func TestSteps_Run(t *testing.T) {
	t.Run("collects the full graph", func(t *testing.T) {
		ec, state := setupConnector(t)

		registry := connector.NewRegistry()
		for _, step := range connector.Steps() {
			registry.Register(step)
		}
		require.NoError(t, registry.Run(context.Background(), ec))

		entities := state.Entities()
		require.Len(t, entities, 4)

		keys := make([]string, 0, len(entities))
		for _, entity := range entities {
			keys = append(keys, entity.Key)
		}
		assert.Contains(t, keys, "sigsci_corp:acme")
		assert.Contains(t, keys, "sigsci_user:jane@acme.example")
		assert.Contains(t, keys, "sigsci_user:john@acme.example")
		assert.Contains(t, keys, "sigsci_cloudwaf:cwaf-123")

		relationships := state.Relationships()
		require.Len(t, relationships, 3)
		for _, rel := range relationships {
			assert.Equal(t, "sigsci_corp:acme", rel.FromKey)
			assert.Equal(t, connector.RelationshipClassHas, rel.Class)
		}
	})

	t.Run("corp step runs before user step", func(t *testing.T) {
		ec, state := setupConnector(t)

		registry := connector.NewRegistry()
		for _, step := range connector.Steps() {
			registry.Register(step)
		}
		require.NoError(t, registry.Run(context.Background(), ec))

		// Corp entity lands first: the corps step has no dependencies.
		entities := state.Entities()
		require.NotEmpty(t, entities)
		assert.Equal(t, "sigsci_corp:acme", entities[0].Key)
	})

	t.Run("propagates client errors unchanged", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/auth", func(w http.ResponseWriter, r *http.Request) {
			err := json.NewEncoder(w).Encode(map[string]string{"token": "test-token"})
			assert.NoError(t, err)
		})
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		client, err := sigsci.NewClient(
			sigsci.WithBaseURL(server.URL),
			sigsci.WithCredentials("user@example.com", "hunter2"),
		)
		require.NoError(t, err)

		registry := connector.NewRegistry()
		for _, step := range connector.Steps() {
			registry.Register(step)
		}
		err = registry.Run(context.Background(), &connector.ExecutionContext{
			Client: client,
			State:  connector.NewInMemoryJobState(),
		})
		require.Error(t, err)

		var authErr *sigsci.AuthenticationError
		require.ErrorAs(t, err, &authErr)
	})
}
