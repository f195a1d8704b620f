// Package config provides CLI configuration loading and management.
//
// The configuration only seeds new definitions and locates local state; it
// never changes what the generator emits for a given definition.
package config

import (
	"github.com/wpforge/cli/internal/plugin"
)

// DefaultsConfig seeds the header of definitions written by `wpforge init`.
type DefaultsConfig struct {
	// Author is the plugin author.
	// Env: WPFORGE_DEFAULTS_AUTHOR
	Author string `json:"author,omitempty" yaml:"author,omitempty" mapstructure:"author"`

	// AuthorURI is the author's home page.
	// Env: WPFORGE_DEFAULTS_AUTHORURI
	AuthorURI string `json:"authorUri,omitempty" yaml:"authorUri,omitempty" mapstructure:"authorUri"`

	// License defaults to GPL-2.0+.
	License string `json:"license,omitempty" yaml:"license,omitempty" mapstructure:"license"`

	// RequiresWP is the minimum WordPress version, default 5.0.
	RequiresWP string `json:"requiresWp,omitempty" yaml:"requiresWp,omitempty" mapstructure:"requiresWp"`

	// RequiresPHP is the minimum PHP version, default 7.0.
	RequiresPHP string `json:"requiresPhp,omitempty" yaml:"requiresPhp,omitempty" mapstructure:"requiresPhp"`
}

// DraftsConfig locates the draft database.
type DraftsConfig struct {
	// Path is the bbolt file. Env: WPFORGE_DRAFTS_PATH, Default: ~/.wpforge/drafts.db
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the wpforge CLI configuration, loaded from
// ~/.wpforge/config.yaml.
type Config struct {
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults" mapstructure:"defaults"`
	Drafts   DraftsConfig   `json:"drafts" yaml:"drafts" mapstructure:"drafts"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `wpforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			License:     plugin.DefaultLicense,
			RequiresWP:  plugin.DefaultRequiresWP,
			RequiresPHP: plugin.DefaultRequiresPHP,
		},
		Drafts: DraftsConfig{
			Path: "~/.wpforge/drafts.db",
		},
	}
}

// WithDefaults returns a copy with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Defaults.License == "" {
		out.Defaults.License = def.Defaults.License
	}
	if out.Defaults.RequiresWP == "" {
		out.Defaults.RequiresWP = def.Defaults.RequiresWP
	}
	if out.Defaults.RequiresPHP == "" {
		out.Defaults.RequiresPHP = def.Defaults.RequiresPHP
	}
	if out.Drafts.Path == "" {
		out.Drafts.Path = def.Drafts.Path
	}
	return &out
}

// BasicInfo returns a plugin header seeded from the defaults section.
func (c *Config) BasicInfo(name, slug, description string) plugin.BasicInfo {
	d := c.WithDefaults().Defaults
	return plugin.BasicInfo{
		Name:                    name,
		Slug:                    slug,
		Description:             description,
		Author:                  d.Author,
		AuthorURI:               d.AuthorURI,
		Version:                 plugin.DefaultVersion,
		RequiresPlatformVersion: d.RequiresWP,
		RequiresRuntimeVersion:  d.RequiresPHP,
		License:                 d.License,
	}
}
