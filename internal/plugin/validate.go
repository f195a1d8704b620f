package plugin

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wpforge/cli/internal/naming"
)

var (
	// slugPattern matches lowercase words joined by single hyphens or
	// underscores, starting with a letter so the derived class name is legal.
	slugPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:[-_][a-z0-9]+)*$`)

	// tagPattern matches shortcode tags that are also safe file names.
	tagPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

	phpIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// FieldError is one failed precondition.
type FieldError struct {
	// Path locates the offending value, e.g. "tables[0].columns[1].name".
	Path    string
	Message string
}

func (e FieldError) Error() string {
	return e.Path + ": " + e.Message
}

// ValidationErrors collects every failed precondition of a configuration.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	lines := make([]string, len(v))
	for i, e := range v {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "shortcodetag", func(fl validator.FieldLevel) bool {
		return tagPattern.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(validateColumn, ColumnDef{})
	v.RegisterStructValidation(validateDerivedNames, Config{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validation: %v", tag, err))
	}
}

// jsonName reports fields by their definition file key.
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Validate checks the preconditions the generator relies on: required basic
// fields, slug and tag format, identifier uniqueness, column constraints and
// distinct PHP names for everything that becomes a method. Every violation is
// collected. A nil error means the configuration may be generated.
//
// Sections whose feature flag is off are still checked; they are ignored by
// the generator but will be used once the flag is turned on.
func Validate(c Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, len(fieldErrs))
	for i, fe := range fieldErrs {
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		errs[i] = FieldError{Path: path, Message: message(fe)}
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "slug":
		return fmt.Sprintf("%q must start with a lowercase letter and use lowercase letters and digits separated by '-' or '_'", fe.Value())
	case "shortcodetag":
		return fmt.Sprintf("%q must use only lowercase letters, digits, '-' or '_'", fe.Value())
	case "ne":
		return fmt.Sprintf("%q is reserved", fe.Value())
	case "unique":
		return fmt.Sprintf("contains duplicate %s values", lowerFirst(fe.Param()))
	case "duplicate":
		return fmt.Sprintf("duplicate %q", fe.Value())
	case "identifier":
		return fmt.Sprintf("%q derives %s, which is not a valid PHP name", fe.Value(), fe.Param())
	case "collision":
		return fmt.Sprintf("%q derives the same PHP name as %q", fe.Value(), fe.Param())
	case "primarynullable":
		return fmt.Sprintf("primary column %q cannot be nullable", fe.Param())
	case "primaryunique":
		return fmt.Sprintf("primary column %q must be unique", fe.Param())
	case "autoincrement":
		return fmt.Sprintf("auto increment requires int or bigint, got %q", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func validateColumn(sl validator.StructLevel) {
	col := sl.Current().Interface().(ColumnDef)
	if col.Primary && col.Nullable {
		sl.ReportError(col.Nullable, "nullable", "Nullable", "primarynullable", col.Name)
	}
	if col.Primary && !col.Unique {
		sl.ReportError(col.Unique, "unique", "Unique", "primaryunique", col.Name)
	}
	if col.AutoIncrement && !col.Type.IsInteger() {
		sl.ReportError(col.AutoIncrement, "autoIncrement", "AutoIncrement", "autoincrement", string(col.Type))
	}
}

// nameClaims maps derived PHP names to the raw value that produced them.
type nameClaims struct {
	sl    validator.StructLevel
	owner map[string]string
}

func newNameClaims(sl validator.StructLevel) *nameClaims {
	return &nameClaims{sl: sl, owner: map[string]string{}}
}

// claim registers name for raw. A second claim from a different raw value is
// a collision; one from the same raw value is reported only when reportSame
// is set, since unique tags already cover plain duplicates.
func (n *nameClaims) claim(path, name, raw string, reportSame bool) {
	if !phpIdentPattern.MatchString(name) {
		n.sl.ReportError(raw, path, path, "identifier", name)
		return
	}
	prev, taken := n.owner[name]
	switch {
	case !taken:
		n.owner[name] = raw
	case prev != raw:
		n.sl.ReportError(raw, path, path, "collision", prev)
	case reportSame:
		n.sl.ReportError(raw, path, path, "duplicate", "")
	}
}

// validateDerivedNames rejects configurations whose distinct values would
// render to the same PHP method or option name.
func validateDerivedNames(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)

	groups := newNameClaims(sl)
	fields := newNameClaims(sl)
	for i, g := range c.SettingsGroups {
		token := naming.MethodToken(g.ID)
		groups.claim(fmt.Sprintf("settingsGroups[%d].id", i), token+"_section_callback", g.ID, false)
		for j, f := range g.Fields {
			fields.claim(
				fmt.Sprintf("settingsGroups[%d].fields[%d].id", i, j),
				token+"_"+naming.MethodToken(f.ID)+"_field_callback",
				g.ID+"/"+f.ID,
				false,
			)
		}
	}

	boxes := newNameClaims(sl)
	for i, ct := range c.ContentTypes {
		metaKeys := newNameClaims(sl)
		for j, mb := range ct.MetaBoxes {
			boxes.claim(
				fmt.Sprintf("contentTypes[%d].metaBoxes[%d].id", i, j),
				"render_"+naming.MethodToken(ct.Slug)+"_"+naming.MethodToken(mb.ID)+"_meta_box",
				ct.Slug+"/"+mb.ID,
				false,
			)
			for k, f := range mb.Fields {
				metaKeys.claim(
					fmt.Sprintf("contentTypes[%d].metaBoxes[%d].fields[%d].id", i, j, k),
					"_"+naming.MethodToken(f.ID),
					mb.ID+"/"+f.ID,
					false,
				)
			}
		}
	}

	tags := newNameClaims(sl)
	for i, s := range c.Shortcodes {
		tags.claim(fmt.Sprintf("shortcodes[%d].tag", i), naming.MethodToken(s.Tag)+"_shortcode_callback", s.Tag, false)
	}

	routes := newNameClaims(sl)
	for i, e := range c.Endpoints {
		if e.Route == "" {
			continue
		}
		method := strings.ToUpper(string(e.Method))
		if method == "" {
			method = string(MethodGet)
		}
		route := strings.Trim(e.Route, "/")
		routes.claim(
			fmt.Sprintf("endpoints[%d].route", i),
			naming.MethodToken(route)+"_"+strings.ToLower(method)+"_callback",
			method+" /"+route,
			true,
		)
	}
}
