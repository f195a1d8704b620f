package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() Config {
	cfg := Default()
	cfg.Basic.Name = "Demo Plugin"
	cfg.Basic.Slug = "demo-plugin"
	cfg.Basic.Description = "x"
	ct := NewContentType("Book", "book", "Book", "Books")
	ct.Taxonomies = []TaxonomyDef{NewTaxonomy("Genre", "genre", "Genre", "Genres")}
	ct.MetaBoxes = []MetaBoxDef{{ID: "details", Title: "Details", Fields: []MetaFieldDef{{ID: "isbn", Label: "ISBN", Type: FieldText}}}}
	cfg.ContentTypes = []ContentTypeDef{ct}
	cfg.Tables = []TableDef{{Name: "log", Columns: []ColumnDef{{Name: "id", Type: SQLBigInt}}}}
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "1.0.0", cfg.Basic.Version)
	assert.Equal(t, "5.0", cfg.Basic.RequiresPlatformVersion)
	assert.Equal(t, "7.0", cfg.Basic.RequiresRuntimeVersion)
	assert.Equal(t, "GPL-2.0+", cfg.Basic.License)
	assert.Empty(t, cfg.Features.EnabledList())
	assert.Empty(t, cfg.ContentTypes)
}

func TestNewContentType_Defaults(t *testing.T) {
	ct := NewContentType("Book", "book", "Book", "Books")
	assert.True(t, ct.Public)
	assert.True(t, ct.HasArchive)
	assert.True(t, ct.ShowInRest)
	assert.False(t, ct.PubliclyQueryable)
	assert.False(t, ct.ShowInMenu)
	assert.Equal(t, DefaultMenuIcon, ct.MenuIcon)
	assert.Equal(t, []string{"title", "editor", "thumbnail"}, ct.Supports())
}

func TestClone_IsDeep(t *testing.T) {
	orig := sampleConfig()
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.ContentTypes[0].SupportedCapabilities["excerpt"] = true
	clone.ContentTypes[0].Taxonomies[0].Slug = "changed"
	clone.ContentTypes[0].MetaBoxes[0].Fields[0].ID = "changed"
	clone.Tables[0].Columns[0].Name = "changed"

	assert.False(t, orig.ContentTypes[0].SupportedCapabilities["excerpt"])
	assert.Equal(t, "genre", orig.ContentTypes[0].Taxonomies[0].Slug)
	assert.Equal(t, "isbn", orig.ContentTypes[0].MetaBoxes[0].Fields[0].ID)
	assert.Equal(t, "id", orig.Tables[0].Columns[0].Name)
}

func TestWith_DoesNotMutateReceiver(t *testing.T) {
	orig := sampleConfig()
	next := orig.With(
		WithFeature(FeatureShortcodes, true),
		AddShortcode(ShortcodeDef{Tag: "hello"}),
		AddEndpoint(EndpointDef{Route: "items", Method: MethodPost}),
		AddTable(TableDef{Name: "other"}),
		AddSettingsGroup(SettingsGroupDef{ID: "main"}),
		AddContentType(NewContentType("Movie", "movie", "Movie", "Movies")),
	)

	assert.False(t, orig.Features.Shortcodes)
	assert.Empty(t, orig.Shortcodes)
	assert.Len(t, orig.Tables, 1)
	assert.Len(t, orig.ContentTypes, 1)

	assert.True(t, next.Features.Shortcodes)
	assert.Len(t, next.Shortcodes, 1)
	assert.Len(t, next.Endpoints, 1)
	assert.Len(t, next.Tables, 2)
	assert.Len(t, next.SettingsGroups, 1)
	assert.Len(t, next.ContentTypes, 2)
}

func TestWithBasic(t *testing.T) {
	next := Default().With(WithBasic(BasicInfo{Name: "N", Slug: "n"}))
	assert.Equal(t, "N", next.Basic.Name)
	assert.Empty(t, next.Basic.Version)
}

func TestEffectiveDefaults(t *testing.T) {
	cfg := sampleConfig()

	shortcodes := cfg.EffectiveShortcodes()
	require.Len(t, shortcodes, 1)
	assert.Equal(t, "demo-plugin", shortcodes[0].Tag)
	require.Len(t, shortcodes[0].Attributes, 1)
	assert.Equal(t, "Default Title", shortcodes[0].Attributes[0].DefaultValue)

	endpoints := cfg.EffectiveEndpoints()
	require.Len(t, endpoints, 1)
	assert.Equal(t, "example", endpoints[0].Route)
	assert.Equal(t, MethodGet, endpoints[0].Method)

	groups := cfg.EffectiveSettingsGroups()
	require.Len(t, groups, 1)
	assert.Equal(t, "general", groups[0].ID)

	assert.True(t, cfg.HasMetaBoxes())
	assert.False(t, Default().HasMetaBoxes())
}
