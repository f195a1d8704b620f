package plugin

import "maps"

// Mutator changes a configuration in place. Mutators only ever see a private
// copy, see With.
type Mutator func(*Config)

// With returns a copy of c with every mutator applied in order. c itself is
// never modified.
func (c Config) With(mutators ...Mutator) Config {
	next := c.Clone()
	for _, m := range mutators {
		m(&next)
	}
	return next
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c

	out.SettingsGroups = cloneSlice(c.SettingsGroups, func(g SettingsGroupDef) SettingsGroupDef {
		g.Fields = cloneSlice(g.Fields, func(f SettingsFieldDef) SettingsFieldDef {
			f.Options = cloneSlice(f.Options, nil)
			return f
		})
		return g
	})

	out.ContentTypes = cloneSlice(c.ContentTypes, func(ct ContentTypeDef) ContentTypeDef {
		if ct.SupportedCapabilities != nil {
			ct.SupportedCapabilities = maps.Clone(ct.SupportedCapabilities)
		}
		ct.Taxonomies = cloneSlice(ct.Taxonomies, nil)
		ct.MetaBoxes = cloneSlice(ct.MetaBoxes, func(mb MetaBoxDef) MetaBoxDef {
			mb.Fields = cloneSlice(mb.Fields, nil)
			return mb
		})
		return ct
	})

	out.Shortcodes = cloneSlice(c.Shortcodes, func(s ShortcodeDef) ShortcodeDef {
		s.Attributes = cloneSlice(s.Attributes, nil)
		return s
	})

	out.Endpoints = cloneSlice(c.Endpoints, func(e EndpointDef) EndpointDef {
		e.Parameters = cloneSlice(e.Parameters, nil)
		return e
	})

	out.Tables = cloneSlice(c.Tables, func(t TableDef) TableDef {
		t.Columns = cloneSlice(t.Columns, nil)
		return t
	})

	return out
}

func cloneSlice[T any](in []T, deep func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		if deep != nil {
			v = deep(v)
		}
		out[i] = v
	}
	return out
}

// WithBasic replaces the basic info.
func WithBasic(b BasicInfo) Mutator {
	return func(c *Config) { c.Basic = b }
}

// WithFeature turns a feature on or off. Unknown features are ignored.
func WithFeature(f Feature, on bool) Mutator {
	return func(c *Config) { _ = c.Features.Set(f, on) }
}

// AddContentType appends a content type.
func AddContentType(ct ContentTypeDef) Mutator {
	return func(c *Config) { c.ContentTypes = append(c.ContentTypes, ct) }
}

// AddSettingsGroup appends a settings group.
func AddSettingsGroup(g SettingsGroupDef) Mutator {
	return func(c *Config) { c.SettingsGroups = append(c.SettingsGroups, g) }
}

// AddShortcode appends a shortcode.
func AddShortcode(s ShortcodeDef) Mutator {
	return func(c *Config) { c.Shortcodes = append(c.Shortcodes, s) }
}

// AddEndpoint appends a REST endpoint.
func AddEndpoint(e EndpointDef) Mutator {
	return func(c *Config) { c.Endpoints = append(c.Endpoints, e) }
}

// AddTable appends a database table.
func AddTable(t TableDef) Mutator {
	return func(c *Config) { c.Tables = append(c.Tables, t) }
}
