package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv isolates a test from the developer's environment and working
// directory config file.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"OPENAI_API_KEY", "OPENAI_API_BASE_URL",
		"LLMEXTRACT_API_KEY", "LLMEXTRACT_BASE_URL", "LLMEXTRACT_MODEL",
		"LLMEXTRACT_MAX_TOKENS", "LLMEXTRACT_TIMEOUT", "LLMEXTRACT_REPAIR",
		"LLMEXTRACT_OUTPUT", "LLMEXTRACT_VALIDATE_RECORDS", "LLMEXTRACT_LOG_LEVEL", "LLMEXTRACT_LOG_FORMAT",
		"LLMEXTRACT_LOG_REQUESTS",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "llmextract.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_LLM_KEY", "sk-from-ref")

	path := writeConfig(t, `
api_key: "${TEST_LLM_KEY}"
model: gpt-4o
max_tokens: 300
timeout: 15s
repair: true
validate_records: true
output: json
log:
  level: debug
  format: json
  requests: standard
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "sk-from-ref" {
		t.Errorf("APIKey = %q, want sk-from-ref", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o" || cfg.MaxTokens != 300 || cfg.Timeout != 15*time.Second || !cfg.Repair || !cfg.ValidateRecords {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Output != "json" || cfg.Log != (LogConfig{Level: "debug", Format: "json", Requests: "standard"}) {
		t.Errorf("unexpected output/log config %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "model: gpt-4o\nlog:\n  level: warn\n")

	t.Setenv("LLMEXTRACT_MODEL", "gpt-4.1-mini")
	t.Setenv("LLMEXTRACT_LOG_LEVEL", "error")
	t.Setenv("LLMEXTRACT_MAX_TOKENS", "512")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Model != "gpt-4.1-mini" || cfg.Log.Level != "error" || cfg.MaxTokens != 512 {
		t.Errorf("environment must override the file, got %+v", cfg)
	}
}

func TestLoad_OpenAIFallbackVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("OPENAI_API_BASE_URL", "http://localhost:11434/v1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "sk-openai" || cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("unexpected config %+v", cfg)
	}

	t.Setenv("LLMEXTRACT_API_KEY", "sk-own")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "sk-own" {
		t.Errorf("LLMEXTRACT_API_KEY must win, got %q", cfg.APIKey)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad output", "output: xml\n", "unknown output format"},
		{"bad log format", "log:\n  format: logfmt\n", "unknown log format"},
		{"bad log level", "log:\n  level: loud\n", "unknown log level"},
		{"bad request logging", "log:\n  requests: everything\n", "unknown request log level"},
		{"zero max tokens", "max_tokens: 0\n", "max_tokens must be positive"},
		{"malformed yaml", "model: [unclosed\n", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("TEST_API_KEY", "secret123")

	tests := map[string]string{
		"${TEST_API_KEY}":             "secret123",
		"${DEFINITELY_NOT_SET_12345}": "",
		"literal-value":               "literal-value",
		"prefix-${TEST_API_KEY}-tail": "prefix-secret123-tail",
		"":                            "",
	}
	for in, want := range tests {
		if got := ResolveEnvVars(in); got != want {
			t.Errorf("ResolveEnvVars(%q) = %q, want %q", in, got, want)
		}
	}
}
