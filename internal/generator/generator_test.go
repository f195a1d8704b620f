package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpforge/cli/internal/plugin"
)

func demoConfig() plugin.Config {
	return plugin.Default().With(plugin.WithBasic(plugin.BasicInfo{
		Name:        "Demo Plugin",
		Slug:        "demo-plugin",
		Description: "x",
	}))
}

var fixedPaths = []string{
	"demo-plugin.php",
	"includes/class-demo-plugin.php",
	"includes/class-demo-plugin-loader.php",
	"includes/class-demo-plugin-i18n.php",
	"includes/class-demo-plugin-activator.php",
	"includes/class-demo-plugin-deactivator.php",
	"includes/index.php",
	"admin/class-demo-plugin-admin.php",
	"admin/demo-plugin-admin-display.php",
	"admin/index.php",
	"public/class-demo-plugin-public.php",
	"public/demo-plugin-public-display.php",
	"public/index.php",
	"languages/demo-plugin.pot",
	"languages/index.php",
	"readme.txt",
	"index.php",
}

func TestAssemble_NoFeatures(t *testing.T) {
	fs := Assemble(demoConfig())

	assert.Equal(t, fixedPaths, fs.Paths())
	assert.Equal(t, 17, fs.Len())

	fragments := []string{
		"add_plugin_admin_menu",
		"register_settings",
		"register_custom_post_types",
		"register_shortcodes",
		"register_rest_routes",
		"dbDelta",
	}
	for _, f := range fs.Files() {
		for _, frag := range fragments {
			assert.NotContains(t, f.Content, frag, "%s contains %s", f.Path, frag)
		}
	}
}

func TestAssemble_IndexGuardPerDirectory(t *testing.T) {
	fs := Assemble(demoConfig().With(plugin.WithFeature(plugin.FeatureShortcodes, true)))

	dirs := map[string]bool{}
	for _, p := range fs.Paths() {
		if i := strings.LastIndex(p, "/"); i >= 0 {
			dirs[p[:i]] = true
		} else {
			dirs[""] = true
		}
	}
	for dir := range dirs {
		guard := "index.php"
		if dir != "" {
			guard = dir + "/index.php"
		}
		content, ok := fs.Get(guard)
		require.True(t, ok, "directory %q has no index guard", dir)
		assert.Equal(t, "<?php // Silence is golden", content)
	}
}

func TestAssemble_DefaultShortcode(t *testing.T) {
	fs := Assemble(demoConfig().With(plugin.WithFeature(plugin.FeatureShortcodes, true)))

	var shortcodeFiles []string
	for _, p := range fs.Paths() {
		if strings.HasPrefix(p, "public/shortcodes/") && p != "public/shortcodes/index.php" {
			shortcodeFiles = append(shortcodeFiles, p)
		}
	}
	assert.Equal(t, []string{"public/shortcodes/demo-plugin.php"}, shortcodeFiles)
	assert.True(t, fs.Has("public/shortcodes/index.php"))
	assert.Equal(t, 19, fs.Len())
}

func TestAssemble_ShortcodePerDefinition(t *testing.T) {
	cfg := demoConfig().With(
		plugin.WithFeature(plugin.FeatureShortcodes, true),
		plugin.AddShortcode(plugin.ShortcodeDef{Tag: "alpha"}),
		plugin.AddShortcode(plugin.ShortcodeDef{Tag: "beta"}),
	)
	fs := Assemble(cfg)

	assert.True(t, fs.Has("public/shortcodes/alpha.php"))
	assert.True(t, fs.Has("public/shortcodes/beta.php"))
	assert.False(t, fs.Has("public/shortcodes/demo-plugin.php"))
}

func TestAssemble_ShortcodesIgnoredWhenDisabled(t *testing.T) {
	cfg := demoConfig().With(plugin.AddShortcode(plugin.ShortcodeDef{Tag: "alpha"}))
	fs := Assemble(cfg)
	assert.Equal(t, fixedPaths, fs.Paths())
}

func TestAssemble_Assets(t *testing.T) {
	fs := AssembleWithOptions(demoConfig(), Options{Assets: true})

	for _, p := range []string{
		"admin/css/demo-plugin-admin.css",
		"admin/css/index.php",
		"admin/js/demo-plugin-admin.js",
		"admin/js/index.php",
		"public/css/demo-plugin-public.css",
		"public/css/index.php",
		"public/js/demo-plugin-public.js",
		"public/js/index.php",
	} {
		assert.True(t, fs.Has(p), "missing %s", p)
	}
	assert.Equal(t, 25, fs.Len())
}

func TestAssemble_Deterministic(t *testing.T) {
	cfg := demoConfig()
	for _, f := range plugin.Features() {
		require.NoError(t, cfg.Features.Set(f, true))
	}
	cfg.ContentTypes = []plugin.ContentTypeDef{plugin.NewContentType("Book", "book", "Book", "Books")}
	cfg.Tables = []plugin.TableDef{{Name: "log", Columns: []plugin.ColumnDef{{Name: "id", Type: plugin.SQLInt, Primary: true, Unique: true}}}}

	first := AssembleWithOptions(cfg, Options{Assets: true})
	second := AssembleWithOptions(cfg, Options{Assets: true})

	assert.Equal(t, first.Paths(), second.Paths())
	assert.Equal(t, first.Map(), second.Map())
}

func TestAssemble_DuplicateContentTypes(t *testing.T) {
	ct := plugin.NewContentType("Book", "book", "Book", "Books")
	cfg := demoConfig().With(
		plugin.WithFeature(plugin.FeatureCustomContentTypes, true),
		plugin.AddContentType(ct),
		plugin.AddContentType(ct),
	)

	var fs *FileSet
	require.NotPanics(t, func() { fs = Assemble(cfg) })

	admin, ok := fs.Get("admin/class-demo-plugin-admin.php")
	require.True(t, ok)
	assert.Equal(t, 2, strings.Count(admin, "register_post_type('book', $args);"))
}

func TestAssemble_NamingAcrossFiles(t *testing.T) {
	cfg := demoConfig()
	cfg.Basic.Slug = "my_cool-plugin"
	fs := Assemble(cfg)

	root, ok := fs.Get("my_cool-plugin.php")
	require.True(t, ok)
	orch, ok := fs.Get("includes/class-my_cool-plugin.php")
	require.True(t, ok)

	assert.Contains(t, root, "new My_Cool_Plugin();")
	assert.Contains(t, orch, "class My_Cool_Plugin {")
}

func TestFileSet(t *testing.T) {
	fs := NewFileSet()
	fs.add("b.txt", "1")
	fs.add("a.txt", "2")
	fs.add("b.txt", "3")

	assert.Equal(t, []string{"b.txt", "a.txt"}, fs.Paths())
	assert.Equal(t, []string{"a.txt", "b.txt"}, fs.SortedPaths())
	content, ok := fs.Get("b.txt")
	assert.True(t, ok)
	assert.Equal(t, "3", content)
	_, ok = fs.Get("c.txt")
	assert.False(t, ok)
	assert.Equal(t, 2, fs.Size())
	assert.Equal(t, map[string]string{"a.txt": "2", "b.txt": "3"}, fs.Map())
}
