// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DemoDefinition is a minimal valid plugin definition with slug demo-plugin.
const DemoDefinition = `basic:
  name: Demo Plugin
  description: A demo plugin.
  author: Jane Doe
features:
  shortcodes: true
  restApi: true
`

// isolatedEnv lists the variables cleared by IsolateHome.
var isolatedEnv = []string{
	"WPFORGE_CONFIG",
	"WPFORGE_DEFAULTS_AUTHOR",
	"WPFORGE_DEFAULTS_AUTHORURI",
	"WPFORGE_DEFAULTS_LICENSE",
	"WPFORGE_DEFAULTS_REQUIRESWP",
	"WPFORGE_DEFAULTS_REQUIRESPHP",
	"WPFORGE_DRAFTS_PATH",
	"WPFORGE_LOG_TIMESTAMPS",
}

// IsolateHome points HOME at a fresh temporary directory, clears the
// WPFORGE_* environment and changes into a second temporary directory used as
// the working directory. It returns the working directory.
func IsolateHome(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, key := range isolatedEnv {
		t.Setenv(key, "")
	}

	work := t.TempDir()
	t.Chdir(work)
	return work
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}
