package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront_copywriter/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "HOME_JSON_PATH", "PRODUCT_JSON_PATH", "FOOTER_JSON_PATH"} {
		t.Setenv(key, "")
	}
}

func TestLoad_FileWithDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"llm":{"api_key":"sk-test"},"pages":{"home":"/tmp/home.json"}}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "/tmp/home.json", cfg.Pages.Home)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"llm":{"api_key":"sk-file"},"pages":{"footer":"/from/file.json"}}`)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("FOOTER_JSON_PATH", "/from/env.json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, "/from/env.json", cfg.Pages.Footer)
}

func TestLoad_MissingFileEnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("HOME_JSON_PATH", "/tmp/home.json")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, "/tmp/home.json", cfg.Pages.Home)
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"pages":{"home":"/tmp/home.json"}}`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_MockProviderNeedsNoKey(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"llm":{"provider":"mock"}}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestPathFor(t *testing.T) {
	pages := config.PagePaths{Home: "/h.json", Footer: "/f.json"}

	path, err := pages.PathFor("home")
	require.NoError(t, err)
	assert.Equal(t, "/h.json", path)

	_, err = pages.PathFor("product")
	assert.Error(t, err, "unconfigured page must fail")

	_, err = pages.PathFor("checkout")
	assert.Error(t, err, "unknown page must fail")
}

func TestRetryConfig_Timeout(t *testing.T) {
	assert.Equal(t, 60*time.Second, config.RetryConfig{}.Timeout())
	assert.Equal(t, 5*time.Second, config.RetryConfig{TimeoutSeconds: 5}.Timeout())
}
