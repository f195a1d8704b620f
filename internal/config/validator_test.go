package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name       string
		cfg        *Config
		wantFields []string
	}{
		{name: "defaults are valid", cfg: DefaultConfig()},
		{name: "empty config is valid", cfg: &Config{}},
		{
			name:       "bad author uri",
			cfg:        &Config{Defaults: DefaultsConfig{AuthorURI: "example.com"}},
			wantFields: []string{"defaults.authorUri"},
		},
		{
			name:       "bad versions",
			cfg:        &Config{Defaults: DefaultsConfig{RequiresWP: "latest", RequiresPHP: "7.x"}},
			wantFields: []string{"defaults.requiresWp", "defaults.requiresPhp"},
		},
		{
			name:       "blank drafts path",
			cfg:        &Config{Drafts: DraftsConfig{Path: "   "}},
			wantFields: []string{"drafts.path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.cfg)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs ValidationErrors
			require.True(t, errors.As(err, &errs), "got %v", err)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  requiresPhp: eight\n"), 0o644))

	err = v.ValidateFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaults.requiresPhp")
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())

	errs := ValidationErrors{{Field: "drafts.path", Message: "invalid"}}
	assert.Contains(t, errs.Error(), "  drafts.path: invalid\n")
}
