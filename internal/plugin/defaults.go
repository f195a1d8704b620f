package plugin

// Default values applied to new configurations.
const (
	DefaultVersion         = "1.0.0"
	DefaultRequiresWP      = "5.0"
	DefaultRequiresPHP     = "7.0"
	DefaultLicense         = "GPL-2.0+"
	DefaultTestedUpTo      = "6.0"
	DefaultMenuIcon        = "dashicons-admin-post"
	DefaultShortcodeTitle  = "Default Title"
	DefaultEndpointRoute   = "example"
	DefaultSettingsGroupID = "general"
)

// Default returns the configuration a new plugin starts from: header
// defaults filled in, every feature off, every list empty.
func Default() Config {
	return Config{
		Basic: BasicInfo{
			Version:                 DefaultVersion,
			RequiresPlatformVersion: DefaultRequiresWP,
			RequiresRuntimeVersion:  DefaultRequiresPHP,
			License:                 DefaultLicense,
		},
	}
}

// NewContentType returns a content type with the default visibility flags.
// PubliclyQueryable, ShowInMenu, ShowUI and QueryVar stay false.
func NewContentType(name, slug, singular, plural string) ContentTypeDef {
	return ContentTypeDef{
		Name:          name,
		Slug:          slug,
		SingularLabel: singular,
		PluralLabel:   plural,
		Public:        true,
		ShowInRest:    true,
		HasArchive:    true,
		MenuIcon:      DefaultMenuIcon,
		SupportedCapabilities: map[string]bool{
			"title":     true,
			"editor":    true,
			"thumbnail": true,
		},
	}
}

// NewTaxonomy returns a hierarchical taxonomy.
func NewTaxonomy(name, slug, singular, plural string) TaxonomyDef {
	return TaxonomyDef{
		Name:         name,
		Slug:         slug,
		Singular:     singular,
		Plural:       plural,
		Hierarchical: true,
	}
}

// DefaultShortcode is used when shortcodes are enabled but none are defined.
func DefaultShortcode(slug string) ShortcodeDef {
	return ShortcodeDef{
		Tag:         slug,
		Description: "Default shortcode",
		Attributes: []AttributeDef{
			{Name: "title", Type: AttributeText, DefaultValue: DefaultShortcodeTitle},
		},
	}
}

// DefaultEndpoint is used when the REST API is enabled but no endpoint is defined.
func DefaultEndpoint() EndpointDef {
	return EndpointDef{
		Route:       DefaultEndpointRoute,
		Method:      MethodGet,
		Description: "Example endpoint",
	}
}

// DefaultSettingsGroup is used when settings are enabled but no group is defined.
func DefaultSettingsGroup() SettingsGroupDef {
	return SettingsGroupDef{
		ID:          DefaultSettingsGroupID,
		Title:       "General Settings",
		Description: "General settings for the plugin.",
		Fields: []SettingsFieldDef{
			{ID: "enabled", Title: "Enable plugin", Type: FieldCheckbox, DefaultValue: "1"},
		},
	}
}

// EffectiveShortcodes returns the configured shortcodes or the slug default.
func (c Config) EffectiveShortcodes() []ShortcodeDef {
	if len(c.Shortcodes) == 0 {
		return []ShortcodeDef{DefaultShortcode(c.Basic.Slug)}
	}
	return c.Shortcodes
}

// EffectiveEndpoints returns the configured endpoints or the example default.
func (c Config) EffectiveEndpoints() []EndpointDef {
	if len(c.Endpoints) == 0 {
		return []EndpointDef{DefaultEndpoint()}
	}
	return c.Endpoints
}

// EffectiveSettingsGroups returns the configured groups or the general default.
func (c Config) EffectiveSettingsGroups() []SettingsGroupDef {
	if len(c.SettingsGroups) == 0 {
		return []SettingsGroupDef{DefaultSettingsGroup()}
	}
	return c.SettingsGroups
}

// HasMetaBoxes reports whether any content type declares a meta box.
func (c Config) HasMetaBoxes() bool {
	for _, ct := range c.ContentTypes {
		if len(ct.MetaBoxes) > 0 {
			return true
		}
	}
	return false
}
