package render

import (
	"strconv"
	"strings"

	"github.com/wpforge/cli/internal/naming"
	"github.com/wpforge/cli/internal/plugin"
)

// builtinPages are settings pages provided by WordPress itself.
var builtinPages = map[string]bool{
	"general":    true,
	"writing":    true,
	"reading":    true,
	"discussion": true,
	"media":      true,
}

// inputTypes render as a plain <input> of the same type.
var inputTypes = map[plugin.FieldType]bool{
	plugin.FieldNumber:   true,
	plugin.FieldColor:    true,
	plugin.FieldPassword: true,
	plugin.FieldEmail:    true,
	plugin.FieldURL:      true,
	plugin.FieldDate:     true,
	plugin.FieldTime:     true,
}

// fieldView carries the markup decision for one settings or meta field.
type fieldView struct {
	ID          string
	Label       string
	Description string
	Default     string
	Options     []plugin.Option

	// Kind is one of text, textarea, checkbox, select, radio or input.
	Kind string

	// InputType is the <input type> for Kind "input".
	InputType string

	// Name is the form field name.
	Name string

	// Callback is the settings field callback method.
	Callback string

	// MetaKey is the post meta key of a meta box field.
	MetaKey string
}

func newFieldView(id, label, description string, typ plugin.FieldType) fieldView {
	f := fieldView{ID: id, Label: label, Description: description, Kind: "text"}
	switch t := plugin.FieldType(strings.ToLower(string(typ))); {
	case t == plugin.FieldTextarea || t == plugin.FieldWysiwyg:
		f.Kind = "textarea"
	case t == plugin.FieldCheckbox, t == plugin.FieldSelect, t == plugin.FieldRadio:
		f.Kind = string(t)
	case inputTypes[t]:
		f.Kind = "input"
		f.InputType = string(t)
	}
	return f
}

type settingsGroupView struct {
	ID          string
	Title       string
	Description string

	// Option is the option row that stores every field of the group.
	Option string

	// Group is the register_setting option group, Page the settings page slug.
	Group   string
	Page    string
	Section string

	Callback string
	Fields   []fieldView
}

func (r *Renderer) settingsGroups() []settingsGroupView {
	groups := r.cfg.EffectiveSettingsGroups()
	out := make([]settingsGroupView, 0, len(groups))
	for _, g := range groups {
		token := naming.MethodToken(g.ID)
		option := r.ids.FunctionToken + "_" + token + "_settings"
		v := settingsGroupView{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Option:      option,
			Group:       option,
			Page:        option,
			Section:     r.ids.FunctionToken + "_" + token + "_section",
			Callback:    token + "_section_callback",
		}
		if page := strings.ToLower(g.TargetPage); builtinPages[page] {
			v.Group = page
			v.Page = page
		}
		for _, fd := range g.Fields {
			f := newFieldView(fd.ID, fd.Title, fd.Description, fd.Type)
			f.Default = fd.DefaultValue
			f.Options = fd.Options
			f.Name = option + "[" + fd.ID + "]"
			f.Callback = token + "_" + naming.MethodToken(fd.ID) + "_field_callback"
			v.Fields = append(v.Fields, f)
		}
		out = append(out, v)
	}
	return out
}

// customPages returns the settings pages owned by the plugin, in group order
// and without duplicates.
func (r *Renderer) customPages() []settingsGroupView {
	var out []settingsGroupView
	seen := map[string]bool{}
	for _, g := range r.settingsGroups() {
		if builtinPages[g.Page] || seen[g.Page] {
			continue
		}
		seen[g.Page] = true
		out = append(out, g)
	}
	return out
}

type metaBoxView struct {
	ID       string
	Title    string
	PostType string
	DOMID    string
	Nonce    string
	Action   string
	Callback string
	Fields   []fieldView
}

func (r *Renderer) metaBoxes() []metaBoxView {
	var out []metaBoxView
	fn := r.ids.FunctionToken
	for _, ct := range r.cfg.ContentTypes {
		for _, mb := range ct.MetaBoxes {
			box := naming.MethodToken(mb.ID)
			v := metaBoxView{
				ID:       mb.ID,
				Title:    mb.Title,
				PostType: ct.Slug,
				DOMID:    fn + "_" + box,
				Nonce:    fn + "_" + box + "_nonce",
				Action:   fn + "_save_" + box,
				Callback: "render_" + naming.MethodToken(ct.Slug) + "_" + box + "_meta_box",
			}
			for _, fd := range mb.Fields {
				f := newFieldView(fd.ID, fd.Label, fd.Description, fd.Type)
				f.Name = fn + "_" + naming.MethodToken(fd.ID)
				f.MetaKey = "_" + f.Name
				if f.Kind == "select" || f.Kind == "radio" {
					f.Kind = "text"
				}
				v.Fields = append(v.Fields, f)
			}
			out = append(out, v)
		}
	}
	return out
}

type shortcodeView struct {
	plugin.ShortcodeDef
	Callback string
}

func (r *Renderer) shortcodes() []shortcodeView {
	defs := r.cfg.EffectiveShortcodes()
	out := make([]shortcodeView, len(defs))
	for i, s := range defs {
		out[i] = shortcodeView{ShortcodeDef: s, Callback: naming.MethodToken(s.Tag) + "_shortcode_callback"}
	}
	return out
}

type endpointView struct {
	Route       string
	Method      string
	Description string
	Handler     string
	Permission  string
	Auth        bool
	Args        []argView
}

type argView struct {
	Name        string
	Type        string
	Description string
	Required    bool

	// Default is a PHP literal, empty when the parameter has no default.
	Default string
}

func (r *Renderer) endpoints() []endpointView {
	defs := r.cfg.EffectiveEndpoints()
	out := make([]endpointView, len(defs))
	for i, e := range defs {
		route := strings.Trim(e.Route, "/")
		method := strings.ToUpper(string(e.Method))
		if method == "" {
			method = string(plugin.MethodGet)
		}
		token := naming.MethodToken(route) + "_" + strings.ToLower(method)
		v := endpointView{
			Route:       route,
			Method:      method,
			Description: e.Description,
			Handler:     token + "_callback",
			Permission:  token + "_permission_callback",
			Auth:        e.RequiresAuth,
		}
		for _, p := range e.Parameters {
			v.Args = append(v.Args, argView{
				Name:        p.Name,
				Type:        string(p.Type),
				Description: p.Description,
				Required:    p.Required,
				Default:     phpLiteral(p.Type, p.DefaultValue),
			})
		}
		out[i] = v
	}
	return out
}

// phpLiteral renders a parameter default as a PHP literal of its declared type.
func phpLiteral(typ plugin.ParameterType, value string) string {
	if value == "" {
		return ""
	}
	switch typ {
	case plugin.ParamInteger:
		if _, err := strconv.ParseInt(value, 10, 64); err == nil {
			return value
		}
	case plugin.ParamNumber:
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			return value
		}
	case plugin.ParamBoolean:
		if b, err := strconv.ParseBool(value); err == nil {
			return phpBool(b)
		}
	}
	return "'" + phpString(value) + "'"
}

// escapedTable returns a copy of t with every identifier and literal escaped
// for a double-quoted PHP string.
func escapedTable(t plugin.TableDef) plugin.TableDef {
	out := plugin.TableDef{Name: phpDoubleQuoted(t.Name), Description: t.Description}
	for _, c := range t.Columns {
		c.Name = phpDoubleQuoted(c.Name)
		c.DefaultValue = phpDoubleQuoted(c.DefaultValue)
		c.Length = plugin.Length(phpDoubleQuoted(string(c.Length)))
		out.Columns = append(out.Columns, c)
	}
	return out
}
