package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"teams-api/internal/app"
	"teams-api/internal/infra/storage/memory"
	"teams-api/internal/infra/transport/rest/gen"
	"teams-api/internal/infra/transport/rest/handlers"
)

type testClient struct {
	server  *httptest.Server
	client  *http.Client
	baseURL string
}

func newTestClient() *testClient {
	teamRepo := memory.NewTeamStorage()
	teamRepo.Seed(memory.SeedTeams())

	svc := app.NewService(teamRepo)
	h := handlers.NewHandlers(svc)

	router := chi.NewRouter()
	handlers.RegisterDocs(router)
	gen.HandlerWithOptions(h, gen.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: handlers.BindingErrorHandler,
	})

	server := httptest.NewServer(router)

	// redirects are asserted on, not followed
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testClient{
		server:  server,
		client:  client,
		baseURL: server.URL,
	}
}

func (c *testClient) Close() {
	c.server.Close()
}

func (c *testClient) get(t *testing.T, path string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	require.NoError(t, err)

	resp, err := c.client.Do(req)
	require.NoError(t, err)
	return resp
}

func (c *testClient) getJSON(t *testing.T, path string, out interface{}) *http.Response {
	resp := c.get(t, path)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
