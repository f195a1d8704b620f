// Package plugin defines the plugin configuration consumed by the generator.
//
// A Config is a plain value: nested records and lists with no identity of
// their own. Callers build one with Default, change it with With, and hand it
// to the generator read-only.
package plugin

// Config is the complete description of a plugin to generate.
type Config struct {
	Basic          BasicInfo          `json:"basic"`
	Features       FeatureFlags       `json:"features"`
	SettingsGroups []SettingsGroupDef `json:"settingsGroups,omitempty" validate:"unique=ID,dive"`
	ContentTypes   []ContentTypeDef   `json:"contentTypes,omitempty" validate:"unique=Slug,dive"`
	Shortcodes     []ShortcodeDef     `json:"shortcodes,omitempty" validate:"unique=Tag,dive"`
	Endpoints      []EndpointDef      `json:"endpoints,omitempty" validate:"dive"`
	Tables         []TableDef         `json:"tables,omitempty" validate:"unique=Name,dive"`
}

// BasicInfo is the plugin header metadata.
type BasicInfo struct {
	Name        string `json:"name" validate:"required,notblank"`
	Slug        string `json:"slug" validate:"required,slug,ne=index"`
	Description string `json:"description" validate:"required,notblank"`
	Author      string `json:"author"`
	AuthorURI   string `json:"authorUri"`
	Version     string `json:"version"`

	// RequiresPlatformVersion is the minimum WordPress version ("Requires at least").
	RequiresPlatformVersion string `json:"requiresPlatformVersion"`

	// RequiresRuntimeVersion is the minimum PHP version ("Requires PHP").
	RequiresRuntimeVersion string `json:"requiresRuntimeVersion"`

	License string `json:"license"`

	// TestedUpTo is the readme "Tested up to" value. Empty means DefaultTestedUpTo.
	TestedUpTo string `json:"testedUpTo,omitempty"`
}

// FeatureFlags are independent toggles. A disabled flag makes the generator
// ignore its section even when the section is populated.
type FeatureFlags struct {
	AdminPage          bool `json:"adminPage"`
	Settings           bool `json:"settings"`
	CustomContentTypes bool `json:"customContentTypes"`
	CustomTaxonomies   bool `json:"customTaxonomies"`
	Shortcodes         bool `json:"shortcodes"`
	Widgets            bool `json:"widgets"`
	RestAPI            bool `json:"restApi"`
	Database           bool `json:"database"`
	Cron               bool `json:"cron"`
	UserRoles          bool `json:"userRoles"`
	Blocks             bool `json:"blocks"`
	Email              bool `json:"email"`
	Ajax               bool `json:"ajax"`
}

// ContentTypeDef describes a custom post type.
type ContentTypeDef struct {
	Name          string `json:"name" validate:"required"`
	Slug          string `json:"slug" validate:"required"`
	SingularLabel string `json:"singularLabel" validate:"required"`
	PluralLabel   string `json:"pluralLabel" validate:"required"`
	Description   string `json:"description,omitempty"`

	Public bool `json:"public"`

	// PubliclyQueryable and ShowInMenu default to false, unlike Public and
	// HasArchive which default to true.
	PubliclyQueryable bool `json:"publiclyQueryable,omitempty"`
	ShowInMenu        bool `json:"showInMenu,omitempty"`
	ShowUI            bool `json:"showUi,omitempty"`
	QueryVar          bool `json:"queryVar,omitempty"`

	ShowInRest   bool `json:"showInRest"`
	HasArchive   bool `json:"hasArchive"`
	Hierarchical bool `json:"hierarchical"`

	// MenuPosition of 0 renders as null.
	MenuPosition int    `json:"menuPosition,omitempty"`
	MenuIcon     string `json:"menuIcon,omitempty"`

	// SupportedCapabilities maps capability keys (see Capabilities) to whether
	// the post type supports them.
	SupportedCapabilities map[string]bool `json:"supports,omitempty"`

	Taxonomies []TaxonomyDef `json:"taxonomies,omitempty" validate:"unique=Slug,dive"`
	MetaBoxes  []MetaBoxDef  `json:"metaBoxes,omitempty" validate:"unique=ID,dive"`
}

// TaxonomyDef describes a taxonomy attached to its owning content type.
type TaxonomyDef struct {
	Name         string `json:"name"`
	Slug         string `json:"slug" validate:"required"`
	Singular     string `json:"singular"`
	Plural       string `json:"plural"`
	Hierarchical bool   `json:"hierarchical"`
}

// MetaBoxDef groups custom fields on the content type's edit screen.
type MetaBoxDef struct {
	ID     string         `json:"id" validate:"required"`
	Title  string         `json:"title"`
	Fields []MetaFieldDef `json:"fields,omitempty" validate:"unique=ID,dive"`
}

// MetaFieldDef is one input inside a meta box.
type MetaFieldDef struct {
	ID          string    `json:"id" validate:"required"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Description string    `json:"description,omitempty"`
}

// SettingsGroupDef is one settings section.
type SettingsGroupDef struct {
	ID          string             `json:"id" validate:"required"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description,omitempty"`
	TargetPage  string             `json:"targetPage,omitempty"`
	Fields      []SettingsFieldDef `json:"fields,omitempty" validate:"unique=ID,dive"`
}

// SettingsFieldDef is one field of a settings section.
type SettingsFieldDef struct {
	ID           string    `json:"id" validate:"required"`
	Title        string    `json:"title"`
	Type         FieldType `json:"type"`
	Description  string    `json:"description,omitempty"`
	DefaultValue string    `json:"defaultValue,omitempty"`

	// Options are the choices of select and radio fields.
	Options []Option `json:"options,omitempty"`
}

// Option is a value/label choice.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ShortcodeDef describes a shortcode and its attributes.
type ShortcodeDef struct {
	Tag                string         `json:"tag" validate:"required,shortcodetag,ne=index"`
	Description        string         `json:"description,omitempty"`
	HasEnclosedContent bool           `json:"hasEnclosedContent"`
	Attributes         []AttributeDef `json:"attributes,omitempty" validate:"unique=Name,dive"`
}

// AttributeDef is a shortcode attribute.
type AttributeDef struct {
	Name         string        `json:"name" validate:"required"`
	Description  string        `json:"description,omitempty"`
	Type         AttributeType `json:"type"`
	DefaultValue string        `json:"defaultValue,omitempty"`
	Required     bool          `json:"required"`
}

// EndpointDef describes a REST route.
type EndpointDef struct {
	Route        string         `json:"route" validate:"required"`
	Method       HTTPMethod     `json:"method"`
	Description  string         `json:"description,omitempty"`
	RequiresAuth bool           `json:"requiresAuth"`
	Parameters   []ParameterDef `json:"parameters,omitempty" validate:"unique=Name,dive"`
}

// ParameterDef is a REST route argument.
type ParameterDef struct {
	Name         string        `json:"name" validate:"required"`
	Type         ParameterType `json:"type"`
	Description  string        `json:"description,omitempty"`
	Required     bool          `json:"required"`
	DefaultValue string        `json:"defaultValue,omitempty"`
}

// TableDef describes a custom database table.
type TableDef struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description,omitempty"`
	Columns     []ColumnDef `json:"columns,omitempty" validate:"unique=Name,dive"`
}

// ColumnDef describes one table column.
type ColumnDef struct {
	Name          string  `json:"name" validate:"required"`
	Type          SQLType `json:"type"`
	Length        Length  `json:"length,omitempty"`
	Nullable      bool    `json:"nullable"`
	DefaultValue  string  `json:"defaultValue,omitempty"`
	Primary       bool    `json:"primary"`
	AutoIncrement bool    `json:"autoIncrement"`
	Unique        bool    `json:"unique"`
	Indexed       bool    `json:"indexed"`
}
