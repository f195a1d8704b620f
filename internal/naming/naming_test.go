package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want Identifiers
	}{
		{
			name: "hyphenated slug",
			slug: "my-plugin",
			want: Identifiers{Slug: "my-plugin", ConstantPrefix: "MY_PLUGIN", ClassToken: "My_Plugin", FunctionToken: "my_plugin"},
		},
		{
			name: "mixed separators",
			slug: "my_cool-plugin",
			want: Identifiers{Slug: "my_cool-plugin", ConstantPrefix: "MY_COOL_PLUGIN", ClassToken: "My_Cool_Plugin", FunctionToken: "my_cool_plugin"},
		},
		{
			name: "single word",
			slug: "demo",
			want: Identifiers{Slug: "demo", ConstantPrefix: "DEMO", ClassToken: "Demo", FunctionToken: "demo"},
		},
		{
			name: "digits",
			slug: "seo-2-go",
			want: Identifiers{Slug: "seo-2-go", ConstantPrefix: "SEO_2_GO", ClassToken: "Seo_2_Go", FunctionToken: "seo_2_go"},
		},
		{
			name: "empty slug",
			slug: "",
			want: Identifiers{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.slug))
		})
	}
}

func TestClassToken_Stable(t *testing.T) {
	for _, slug := range []string{"a-b", "a_b", "x--y", "_lead", "trail-"} {
		assert.Equal(t, ClassToken(slug), ClassToken(slug), "slug %q", slug)
	}
	assert.Equal(t, "X_Y", ClassToken("x--y"))
	assert.Equal(t, "Lead", ClassToken("_lead"))
	assert.Equal(t, "Trail", ClassToken("trail-"))
}

func TestConstantPrefix(t *testing.T) {
	assert.Equal(t, "MY_PLUGIN_V2", ConstantPrefix("my.plugin v2"))
	assert.Equal(t, "", ConstantPrefix(""))
}

func TestMethodToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"items", "items"},
		{"items/{id}", "items_id"},
		{"/users/me/", "users_me"},
		{"my-tag", "my_tag"},
		{"already_ok", "already_ok"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MethodToken(tt.in))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Demo Plugin", "demo-plugin"},
		{"  My Awesome   Plugin!! ", "my-awesome-plugin"},
		{"SEO 2 Go", "seo-2-go"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
