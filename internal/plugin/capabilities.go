package plugin

// Capability is a post type "supports" entry.
type Capability struct {
	// Key is the name used in configuration (e.g. "customFields").
	Key string

	// Name is the WordPress identifier (e.g. "custom-fields").
	Name string
}

// canonicalCapabilities fixes the order in which supported capabilities are
// emitted, independent of map iteration order.
var canonicalCapabilities = []Capability{
	{Key: "title", Name: "title"},
	{Key: "editor", Name: "editor"},
	{Key: "author", Name: "author"},
	{Key: "thumbnail", Name: "thumbnail"},
	{Key: "excerpt", Name: "excerpt"},
	{Key: "trackbacks", Name: "trackbacks"},
	{Key: "customFields", Name: "custom-fields"},
	{Key: "comments", Name: "comments"},
	{Key: "revisions", Name: "revisions"},
	{Key: "pageAttributes", Name: "page-attributes"},
	{Key: "postFormats", Name: "post-formats"},
}

// DefaultSupports is used when a content type enables no known capability.
var DefaultSupports = []string{"title", "editor", "thumbnail"}

// Supports returns the WordPress names of the enabled capabilities in
// canonical order. Keys outside the canonical list are ignored. When nothing
// is enabled the result is DefaultSupports.
func (ct ContentTypeDef) Supports() []string {
	var out []string
	for _, c := range canonicalCapabilities {
		if ct.SupportedCapabilities[c.Key] || ct.SupportedCapabilities[c.Name] {
			out = append(out, c.Name)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultSupports...)
	}
	return out
}
