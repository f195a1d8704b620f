package plugin

import (
	"fmt"
	"strings"
)

// Feature names a feature flag.
type Feature string

// Feature flags in their canonical order. Generated fragments always follow
// this order.
const (
	FeatureAdminPage          Feature = "adminPage"
	FeatureSettings           Feature = "settings"
	FeatureCustomContentTypes Feature = "customContentTypes"
	FeatureCustomTaxonomies   Feature = "customTaxonomies"
	FeatureShortcodes         Feature = "shortcodes"
	FeatureWidgets            Feature = "widgets"
	FeatureRestAPI            Feature = "restApi"
	FeatureDatabase           Feature = "database"
	FeatureCron               Feature = "cron"
	FeatureUserRoles          Feature = "userRoles"
	FeatureBlocks             Feature = "blocks"
	FeatureEmail              Feature = "email"
	FeatureAjax               Feature = "ajax"
)

var allFeatures = []Feature{
	FeatureAdminPage,
	FeatureSettings,
	FeatureCustomContentTypes,
	FeatureCustomTaxonomies,
	FeatureShortcodes,
	FeatureWidgets,
	FeatureRestAPI,
	FeatureDatabase,
	FeatureCron,
	FeatureUserRoles,
	FeatureBlocks,
	FeatureEmail,
	FeatureAjax,
}

var featureTitles = map[Feature]string{
	FeatureAdminPage:          "Admin page",
	FeatureSettings:           "Settings",
	FeatureCustomContentTypes: "Custom post types",
	FeatureCustomTaxonomies:   "Custom taxonomies",
	FeatureShortcodes:         "Shortcodes",
	FeatureWidgets:            "Widgets",
	FeatureRestAPI:            "REST API",
	FeatureDatabase:           "Database tables",
	FeatureCron:               "Cron jobs",
	FeatureUserRoles:          "User roles",
	FeatureBlocks:             "Blocks",
	FeatureEmail:              "Email",
	FeatureAjax:               "AJAX",
}

// Features returns every feature in canonical order.
func Features() []Feature {
	out := make([]Feature, len(allFeatures))
	copy(out, allFeatures)
	return out
}

// Title returns a human-readable feature name.
func (f Feature) Title() string {
	if t, ok := featureTitles[f]; ok {
		return t
	}
	return string(f)
}

// ParseFeature resolves a feature name case-insensitively.
func ParseFeature(name string) (Feature, error) {
	for _, f := range allFeatures {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown feature %q", name)
}

// field returns a pointer to the flag backing f, or nil for an unknown feature.
func (ff *FeatureFlags) field(f Feature) *bool {
	switch f {
	case FeatureAdminPage:
		return &ff.AdminPage
	case FeatureSettings:
		return &ff.Settings
	case FeatureCustomContentTypes:
		return &ff.CustomContentTypes
	case FeatureCustomTaxonomies:
		return &ff.CustomTaxonomies
	case FeatureShortcodes:
		return &ff.Shortcodes
	case FeatureWidgets:
		return &ff.Widgets
	case FeatureRestAPI:
		return &ff.RestAPI
	case FeatureDatabase:
		return &ff.Database
	case FeatureCron:
		return &ff.Cron
	case FeatureUserRoles:
		return &ff.UserRoles
	case FeatureBlocks:
		return &ff.Blocks
	case FeatureEmail:
		return &ff.Email
	case FeatureAjax:
		return &ff.Ajax
	default:
		return nil
	}
}

// Enabled reports whether f is on.
func (ff FeatureFlags) Enabled(f Feature) bool {
	p := ff.field(f)
	return p != nil && *p
}

// Set turns f on or off.
func (ff *FeatureFlags) Set(f Feature, on bool) error {
	p := ff.field(f)
	if p == nil {
		return fmt.Errorf("unknown feature %q", f)
	}
	*p = on
	return nil
}

// EnabledList returns the enabled features in canonical order.
func (ff FeatureFlags) EnabledList() []Feature {
	var out []Feature
	for _, f := range allFeatures {
		if ff.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}
