// Package render turns a plugin configuration into the text of each generated
// file.
//
// Every file has one method on Renderer. Optional features contribute
// fragments (see Fragment) that the admin, public and activator classes
// splice into their fixed scaffolding in canonical feature order. Rendering
// is pure: it never mutates the configuration and repeated calls return
// identical text.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/wpforge/cli/internal/ddl"
	"github.com/wpforge/cli/internal/naming"
	"github.com/wpforge/cli/internal/plugin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("wpforge").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

// IndexGuard is the content of every directory's index.php.
const IndexGuard = "<?php // Silence is golden"

// Renderer renders the files of one plugin.
type Renderer struct {
	cfg plugin.Config
	ids naming.Identifiers
}

// New returns a renderer for cfg. The configuration is read, never modified.
func New(cfg plugin.Config) *Renderer {
	return &Renderer{cfg: cfg, ids: naming.Derive(cfg.Basic.Slug)}
}

// Identifiers returns the identifiers derived from the plugin slug.
func (r *Renderer) Identifiers() naming.Identifiers {
	return r.ids
}

// Fragment is the code contributed by one enabled feature.
type Fragment struct {
	Feature plugin.Feature
	Text    string
}

// view is the data handed to file templates.
type view struct {
	Basic     plugin.BasicInfo
	ID        naming.Identifiers
	Features  plugin.FeatureFlags
	Fragments []string
	Extra     any
}

func (r *Renderer) view(fragments []Fragment, extra any) view {
	v := view{Basic: r.cfg.Basic, ID: r.ids, Features: r.cfg.Features, Extra: extra}
	for _, f := range fragments {
		v.Fragments = append(v.Fragments, f.Text)
	}
	return v
}

// execute runs a named template. Templates are parsed at init and only read
// fields that exist on their data, so a failure is a programming error.
func execute(name string, data any) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("render: template %s: %v", name, err))
	}
	return buf.String()
}

// fragment executes a fragment template and strips surrounding blank lines.
func (r *Renderer) fragment(feature plugin.Feature, name string, extra any) Fragment {
	return Fragment{Feature: feature, Text: strings.Trim(execute(name, r.view(nil, extra)), "\n")}
}

// AdminFragments returns the fragments of the admin class in canonical
// feature order. Disabled features contribute nothing.
func (r *Renderer) AdminFragments() []Fragment {
	var out []Fragment
	f := r.cfg.Features
	if f.AdminPage {
		out = append(out, r.fragment(plugin.FeatureAdminPage, "admin-page", nil))
	}
	if f.Settings {
		out = append(out, r.fragment(plugin.FeatureSettings, "settings", r.settingsGroups()))
	}
	if f.CustomContentTypes {
		out = append(out, r.fragment(plugin.FeatureCustomContentTypes, "content-types", contentTypesView{
			Types:     r.cfg.ContentTypes,
			MetaBoxes: r.metaBoxes(),
		}))
	}
	return out
}

// PublicFragments returns the fragments of the public class in canonical
// feature order.
func (r *Renderer) PublicFragments() []Fragment {
	var out []Fragment
	f := r.cfg.Features
	if f.Shortcodes {
		out = append(out, r.fragment(plugin.FeatureShortcodes, "shortcodes", r.shortcodes()))
	}
	if f.RestAPI {
		out = append(out, r.fragment(plugin.FeatureRestAPI, "rest-api", r.endpoints()))
	}
	return out
}

// ActivatorFragments returns the table creation code when the database
// feature is on and at least one table is defined.
func (r *Renderer) ActivatorFragments() []Fragment {
	if !r.cfg.Features.Database || len(r.cfg.Tables) == 0 {
		return nil
	}
	statements := make([]string, len(r.cfg.Tables))
	for i, t := range r.cfg.Tables {
		statements[i] = ddl.CreateTable("{$wpdb->prefix}", "$charset_collate", escapedTable(t))
	}
	return []Fragment{r.fragment(plugin.FeatureDatabase, "database", statements)}
}

type contentTypesView struct {
	Types     []plugin.ContentTypeDef
	MetaBoxes []metaBoxView
}

type hooksView struct {
	Admin  []HookGroup
	Public []HookGroup
}

// RootFile renders <slug>.php, the file WordPress reads the plugin header from.
func (r *Renderer) RootFile() string {
	return execute("root.php.tmpl", r.view(nil, nil))
}

// Orchestrator renders includes/class-<slug>.php.
func (r *Renderer) Orchestrator() string {
	return execute("orchestrator.php.tmpl", r.view(nil, hooksView{
		Admin:  AdminHooks(r.cfg),
		Public: PublicHooks(r.cfg),
	}))
}

// Loader renders includes/class-<slug>-loader.php.
func (r *Renderer) Loader() string {
	return execute("loader.php.tmpl", r.view(nil, nil))
}

// I18n renders includes/class-<slug>-i18n.php.
func (r *Renderer) I18n() string {
	return execute("i18n.php.tmpl", r.view(nil, nil))
}

// Activator renders includes/class-<slug>-activator.php.
func (r *Renderer) Activator() string {
	return execute("activator.php.tmpl", r.view(r.ActivatorFragments(), nil))
}

// Deactivator renders includes/class-<slug>-deactivator.php.
func (r *Renderer) Deactivator() string {
	return execute("deactivator.php.tmpl", r.view(nil, nil))
}

// AdminClass renders admin/class-<slug>-admin.php.
func (r *Renderer) AdminClass() string {
	return execute("admin.php.tmpl", r.view(r.AdminFragments(), nil))
}

// PublicClass renders public/class-<slug>-public.php.
func (r *Renderer) PublicClass() string {
	return execute("public.php.tmpl", r.view(r.PublicFragments(), nil))
}

// AdminDisplay renders admin/<slug>-admin-display.php.
func (r *Renderer) AdminDisplay() string {
	var pages []settingsGroupView
	if r.cfg.Features.Settings {
		pages = r.customPages()
	}
	return execute("admin-display.php.tmpl", r.view(nil, pages))
}

// PublicDisplay renders public/<slug>-public-display.php.
func (r *Renderer) PublicDisplay() string {
	return execute("public-display.php.tmpl", r.view(nil, nil))
}

// ShortcodeTemplate renders public/shortcodes/<tag>.php.
func (r *Renderer) ShortcodeTemplate(s plugin.ShortcodeDef) string {
	return execute("shortcode.php.tmpl", r.view(nil, s))
}

// Shortcodes returns the shortcodes that get a template file: the configured
// ones, or the slug default when none are configured.
func (r *Renderer) Shortcodes() []plugin.ShortcodeDef {
	return r.cfg.EffectiveShortcodes()
}

// POT renders languages/<slug>.pot.
func (r *Renderer) POT() string {
	return execute("plugin.pot.tmpl", r.view(nil, nil))
}

type readmeView struct {
	Contributors string
	TestedUpTo   string
	Features     []plugin.Feature
}

// Readme renders readme.txt.
func (r *Renderer) Readme() string {
	tested := r.cfg.Basic.TestedUpTo
	if tested == "" {
		tested = plugin.DefaultTestedUpTo
	}
	return execute("readme.txt.tmpl", r.view(nil, readmeView{
		Contributors: strings.ToLower(strings.Join(strings.Fields(r.cfg.Basic.Author), "")),
		TestedUpTo:   tested,
		Features:     r.cfg.Features.EnabledList(),
	}))
}

// Side is the admin or public half of the plugin.
type Side string

// Plugin sides.
const (
	SideAdmin  Side = "admin"
	SidePublic Side = "public"
)

// Stylesheet renders the placeholder stylesheet of a side.
func (r *Renderer) Stylesheet(side Side) string {
	return execute("asset.tmpl", r.view(nil, assetView{Side: side, Language: "CSS"}))
}

// Script renders the placeholder script of a side.
func (r *Renderer) Script(side Side) string {
	return execute("asset.tmpl", r.view(nil, assetView{Side: side, Language: "JavaScript"}))
}

type assetView struct {
	Side     Side
	Language string
}
