package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront_copywriter/config"
	"storefront_copywriter/generator"
	"storefront_copywriter/pipeline"
	"storefront_copywriter/retry"
	"storefront_copywriter/server"
)

func newTestServer(t *testing.T, llm generator.LLMClient, cfg config.Config) http.Handler {
	t.Helper()
	policy := retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond}
	client, err := generator.NewClient(llm, policy, 0, zap.NewNop().Sugar())
	require.NoError(t, err)
	runner, err := pipeline.NewRunner(client, zap.NewNop().Sugar())
	require.NoError(t, err)
	srv, err := server.New(runner, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	return srv.Routes()
}

func TestHandlePageRun_UnknownPage(t *testing.T) {
	handler := newTestServer(t, &generator.ScriptedLLM{}, config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/pages/checkout/run",
		strings.NewReader(`{"brand":"Acme","product_title":"Mouse","language":"French"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlePageRun_MissingFields(t *testing.T) {
	handler := newTestServer(t, &generator.ScriptedLLM{}, config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/pages/footer/run",
		strings.NewReader(`{"brand":"Acme"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePageRun_MethodNotAllowed(t *testing.T) {
	handler := newTestServer(t, &generator.ScriptedLLM{}, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/pages/footer/run", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandlePageRun_UnconfiguredPagePath(t *testing.T) {
	handler := newTestServer(t, &generator.ScriptedLLM{}, config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/pages/footer/run",
		strings.NewReader(`{"brand":"Acme","product_title":"Mouse","product_description":"Silent","language":"French"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandlePageRun_FailedRunReportsBadGateway(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footer.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	cfg := config.Config{Pages: config.PagePaths{Footer: path}}

	// Every completion errors, so the first generated unit aborts the run.
	handler := newTestServer(t, &generator.ScriptedLLM{}, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/pages/footer/run",
		strings.NewReader(`{"brand":"Acme","product_title":"Mouse","product_description":"Silent","language":"French"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
