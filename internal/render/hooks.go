package render

import "github.com/wpforge/cli/internal/plugin"

// Component names used in the orchestrator's hook registrations.
const (
	AdminComponent  = "$plugin_admin"
	PublicComponent = "$plugin_public"
)

// Hook is one add_action registration on the loader.
type Hook struct {
	Name      string
	Component string
	Callback  string
}

// HookGroup is the set of hooks contributed by one feature. Feature is empty
// for fixed boilerplate registrations.
type HookGroup struct {
	Feature plugin.Feature
	Comment string
	Hooks   []Hook
}

// AdminHooks returns the admin-side registrations in canonical feature order.
func AdminHooks(cfg plugin.Config) []HookGroup {
	var groups []HookGroup
	f := cfg.Features

	if f.AdminPage {
		groups = append(groups, HookGroup{
			Feature: plugin.FeatureAdminPage,
			Comment: "Admin page",
			Hooks: []Hook{
				{Name: "admin_menu", Component: AdminComponent, Callback: "add_plugin_admin_menu"},
				{Name: "admin_enqueue_scripts", Component: AdminComponent, Callback: "enqueue_admin_styles"},
				{Name: "admin_enqueue_scripts", Component: AdminComponent, Callback: "enqueue_admin_scripts"},
			},
		})
	}

	if f.Settings {
		groups = append(groups, HookGroup{
			Feature: plugin.FeatureSettings,
			Comment: "Settings",
			Hooks: []Hook{
				{Name: "admin_init", Component: AdminComponent, Callback: "register_settings"},
			},
		})
	}

	if f.CustomContentTypes {
		g := HookGroup{
			Feature: plugin.FeatureCustomContentTypes,
			Comment: "Custom post types",
			Hooks: []Hook{
				{Name: "init", Component: AdminComponent, Callback: "register_custom_post_types"},
			},
		}
		if cfg.HasMetaBoxes() {
			g.Hooks = append(g.Hooks,
				Hook{Name: "add_meta_boxes", Component: AdminComponent, Callback: "register_meta_boxes"},
				Hook{Name: "save_post", Component: AdminComponent, Callback: "save_meta_boxes"},
			)
		}
		groups = append(groups, g)
	}

	return groups
}

// PublicHooks returns the public-side registrations: the fixed asset hooks,
// then feature hooks in canonical order.
func PublicHooks(cfg plugin.Config) []HookGroup {
	groups := []HookGroup{{
		Comment: "Assets",
		Hooks: []Hook{
			{Name: "wp_enqueue_scripts", Component: PublicComponent, Callback: "enqueue_styles"},
			{Name: "wp_enqueue_scripts", Component: PublicComponent, Callback: "enqueue_scripts"},
		},
	}}

	if cfg.Features.Shortcodes {
		groups = append(groups, HookGroup{
			Feature: plugin.FeatureShortcodes,
			Comment: "Shortcodes",
			Hooks: []Hook{
				{Name: "init", Component: PublicComponent, Callback: "register_shortcodes"},
			},
		})
	}

	if cfg.Features.RestAPI {
		groups = append(groups, HookGroup{
			Feature: plugin.FeatureRestAPI,
			Comment: "REST API",
			Hooks: []Hook{
				{Name: "rest_api_init", Component: PublicComponent, Callback: "register_rest_routes"},
			},
		})
	}

	return groups
}
