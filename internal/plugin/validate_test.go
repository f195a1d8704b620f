package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationPaths(t *testing.T, err error) []string {
	t.Helper()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %T", err)
	paths := make([]string, len(verrs))
	for i, e := range verrs {
		paths[i] = e.Path
	}
	return paths
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(sampleConfig()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate Mutator
		paths  []string
	}{
		{
			name:   "missing basic fields",
			mutate: WithBasic(BasicInfo{}),
			paths:  []string{"basic.name", "basic.slug", "basic.description"},
		},
		{
			name:   "blank name",
			mutate: func(c *Config) { c.Basic.Name = "   " },
			paths:  []string{"basic.name"},
		},
		{
			name:   "bad slug",
			mutate: func(c *Config) { c.Basic.Slug = "My Plugin" },
			paths:  []string{"basic.slug"},
		},
		{
			name:   "slug starting with a digit",
			mutate: func(c *Config) { c.Basic.Slug = "2fa-guard" },
			paths:  []string{"basic.slug"},
		},
		{
			name:   "reserved slug",
			mutate: func(c *Config) { c.Basic.Slug = "index" },
			paths:  []string{"basic.slug"},
		},
		{
			name:   "duplicate content type slug",
			mutate: AddContentType(NewContentType("Book", "book", "Book", "Books")),
			paths:  []string{"contentTypes"},
		},
		{
			name: "duplicate taxonomy slug within type",
			mutate: func(c *Config) {
				c.ContentTypes[0].Taxonomies = append(c.ContentTypes[0].Taxonomies, NewTaxonomy("G", "genre", "G", "Gs"))
			},
			paths: []string{"contentTypes[0].taxonomies"},
		},
		{
			name: "meta field names shared across boxes of one type",
			mutate: func(c *Config) {
				c.ContentTypes[0].MetaBoxes = append(c.ContentTypes[0].MetaBoxes,
					MetaBoxDef{ID: "more", Title: "More", Fields: []MetaFieldDef{{ID: "isbn", Type: FieldText}}})
			},
			paths: []string{"contentTypes[0].metaBoxes[1].fields[0].id"},
		},
		{
			name: "duplicate shortcode tag and attribute",
			mutate: func(c *Config) {
				c.Shortcodes = []ShortcodeDef{
					{Tag: "a", Attributes: []AttributeDef{{Name: "x"}, {Name: "x"}}},
					{Tag: "a"},
				}
			},
			paths: []string{"shortcodes", "shortcodes[0].attributes"},
		},
		{
			name:   "shortcode tag leaving the shortcode directory",
			mutate: func(c *Config) { c.Shortcodes = []ShortcodeDef{{Tag: "../../../escaped"}} },
			paths:  []string{"shortcodes[0].tag"},
		},
		{
			name:   "shortcode tag with markup characters",
			mutate: func(c *Config) { c.Shortcodes = []ShortcodeDef{{Tag: `my tag"]`}} },
			paths:  []string{"shortcodes[0].tag"},
		},
		{
			name:   "shortcode tag shadowing the index guard",
			mutate: func(c *Config) { c.Shortcodes = []ShortcodeDef{{Tag: "index"}} },
			paths:  []string{"shortcodes[0].tag"},
		},
		{
			name:   "shortcode tag deriving an invalid method name",
			mutate: func(c *Config) { c.Shortcodes = []ShortcodeDef{{Tag: "2col"}} },
			paths:  []string{"shortcodes[0].tag"},
		},
		{
			name: "shortcode tags deriving the same callback",
			mutate: func(c *Config) {
				c.Shortcodes = []ShortcodeDef{{Tag: "my-tag"}, {Tag: "my_tag"}}
			},
			paths: []string{"shortcodes[1].tag"},
		},
		{
			name: "same route different method is fine, same pair is not",
			mutate: func(c *Config) {
				c.Endpoints = []EndpointDef{
					{Route: "items", Method: MethodGet},
					{Route: "items", Method: MethodPost},
					{Route: "items", Method: MethodGet},
				}
			},
			paths: []string{"endpoints[2].route"},
		},
		{
			name: "routes equal after trimming slashes",
			mutate: func(c *Config) {
				c.Endpoints = []EndpointDef{
					{Route: "/items", Method: MethodGet},
					{Route: "items", Method: MethodGet},
				}
			},
			paths: []string{"endpoints[1].route"},
		},
		{
			name: "routes deriving the same handler",
			mutate: func(c *Config) {
				c.Endpoints = []EndpointDef{
					{Route: "items/list", Method: MethodGet},
					{Route: "items-list", Method: MethodGet},
				}
			},
			paths: []string{"endpoints[1].route"},
		},
		{
			name: "duplicate settings group",
			mutate: func(c *Config) {
				c.SettingsGroups = []SettingsGroupDef{{ID: "g", Title: "G"}, {ID: "g", Title: "G"}}
			},
			paths: []string{"settingsGroups"},
		},
		{
			name: "settings groups deriving the same section callback",
			mutate: func(c *Config) {
				c.SettingsGroups = []SettingsGroupDef{{ID: "my-group", Title: "A"}, {ID: "my_group", Title: "B"}}
			},
			paths: []string{"settingsGroups[1].id"},
		},
		{
			name: "settings fields deriving the same field callback",
			mutate: func(c *Config) {
				c.SettingsGroups = []SettingsGroupDef{{
					ID:     "general",
					Title:  "General",
					Fields: []SettingsFieldDef{{ID: "api-key"}, {ID: "api_key"}},
				}}
			},
			paths: []string{"settingsGroups[0].fields[1].id"},
		},
		{
			name: "column constraints",
			mutate: func(c *Config) {
				c.Tables[0].Columns = []ColumnDef{
					{Name: "id", Type: SQLVarchar, Primary: true, Nullable: true, AutoIncrement: true},
					{Name: "id", Type: SQLInt},
				}
			},
			paths: []string{
				"tables[0].columns",
				"tables[0].columns[0].nullable",
				"tables[0].columns[0].unique",
				"tables[0].columns[0].autoIncrement",
			},
		},
		{
			name:   "duplicate table name",
			mutate: AddTable(TableDef{Name: "log"}),
			paths:  []string{"tables"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sampleConfig().With(tt.mutate)
			err := Validate(cfg)
			require.Error(t, err)
			assert.ElementsMatch(t, tt.paths, validationPaths(t, err))
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate Mutator
		want   string
	}{
		{
			name:   "required",
			mutate: func(c *Config) { c.Basic.Description = "" },
			want:   "basic.description: is required",
		},
		{
			name:   "reserved",
			mutate: func(c *Config) { c.Shortcodes = []ShortcodeDef{{Tag: "index"}} },
			want:   `shortcodes[0].tag: "index" is reserved`,
		},
		{
			name:   "duplicate",
			mutate: AddTable(TableDef{Name: "log"}),
			want:   "tables: contains duplicate name values",
		},
		{
			name: "collision",
			mutate: func(c *Config) {
				c.Shortcodes = []ShortcodeDef{{Tag: "my-tag"}, {Tag: "my_tag"}}
			},
			want: `shortcodes[1].tag: "my_tag" derives the same PHP name as "my-tag"`,
		},
		{
			name: "column",
			mutate: func(c *Config) {
				c.Tables[0].Columns[0].Primary = true
				c.Tables[0].Columns[0].Unique = true
				c.Tables[0].Columns[0].Nullable = true
			},
			want: `tables[0].columns[0].nullable: primary column "id" cannot be nullable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(sampleConfig().With(tt.mutate))
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidate_AcceptsLegalShortcodeTags(t *testing.T) {
	cfg := sampleConfig().With(func(c *Config) {
		c.Shortcodes = []ShortcodeDef{{Tag: "book_list"}, {Tag: "book-card"}, {Tag: "col2"}}
	})
	assert.NoError(t, Validate(cfg))
}

func TestValidate_AutoIncrementBigint(t *testing.T) {
	cfg := sampleConfig()
	cfg.Tables[0].Columns = []ColumnDef{{Name: "id", Type: "BIGINT", Primary: true, Unique: true, AutoIncrement: true}}
	assert.NoError(t, Validate(cfg))
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{
		{Path: "basic.name", Message: "is required"},
		{Path: "basic.slug", Message: "is required"},
	}
	assert.Equal(t, "basic.name: is required\nbasic.slug: is required", err.Error())
}
