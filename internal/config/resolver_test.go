package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		opts         ResolveOptions
		wantValue    string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]string
	}{
		{
			name:       "flag wins",
			env:        "env-value",
			opts:       ResolveOptions{FlagValue: "flag-value", ConfigValue: "config-value", DefaultValue: "default-value"},
			wantValue:  "flag-value",
			wantSource: SourceFlag,
			wantShadowed: map[ConfigSource]string{
				SourceEnv:     "env-value",
				SourceConfig:  "config-value",
				SourceDefault: "default-value",
			},
		},
		{
			name:         "env over config",
			env:          "env-value",
			opts:         ResolveOptions{ConfigValue: "config-value"},
			wantValue:    "env-value",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]string{SourceConfig: "config-value"},
		},
		{
			name:         "config fallback",
			opts:         ResolveOptions{ConfigValue: "config-value"},
			wantValue:    "config-value",
			wantSource:   SourceConfig,
			wantShadowed: map[ConfigSource]string{},
		},
		{
			name:         "default",
			opts:         ResolveOptions{DefaultValue: "default-value"},
			wantValue:    "default-value",
			wantSource:   SourceDefault,
			wantShadowed: map[ConfigSource]string{},
		},
		{
			name:         "nothing set",
			wantShadowed: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WPFORGE_TEST_VALUE", tt.env)
			tt.opts.Key = "test.value"
			tt.opts.EnvVar = "WPFORGE_TEST_VALUE"

			got := Resolve(tt.opts)

			assert.Equal(t, "test.value", got.Key)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantShadowed, got.Shadowed)
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	t.Run("flag", func(t *testing.T) {
		t.Setenv("WPFORGE_CONFIG", "/env/config.yaml")
		got, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", got.Value)
		assert.Equal(t, SourceFlag, got.Source)
		assert.Equal(t, "/env/config.yaml", got.Shadowed[SourceEnv])
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("WPFORGE_CONFIG", "")
		got, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, paths.ConfigFile, got.Value)
		assert.Equal(t, SourceDefault, got.Source)
	})
}

func TestResolveDraftsPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ResolveDraftsPath("", &Config{Drafts: DraftsConfig{Path: "~/drafts/wp.db"}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "drafts", "wp.db"), got.Value)
	assert.Equal(t, SourceConfig, got.Source)

	got, err = ResolveDraftsPath("/flag/drafts.db", &Config{Drafts: DraftsConfig{Path: "/cfg.db"}})
	require.NoError(t, err)
	assert.Equal(t, "/flag/drafts.db", got.Value)
	assert.Equal(t, "/cfg.db", got.Shadowed[SourceConfig])

	got, err = ResolveDraftsPath("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".wpforge", "drafts.db"), got.Value)
	assert.Equal(t, SourceDefault, got.Source)
}
