// Package definition loads plugin definitions from YAML, JSON or CUE files.
//
// Every definition is unified with the embedded #Plugin schema, which closes
// the structure, checks enum membership and fills in defaults. The result is
// decoded into a plugin.Config; semantic rules are left to Check.
package definition

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"sigs.k8s.io/yaml"

	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/naming"
	"github.com/wpforge/cli/internal/plugin"
)

//go:embed schema.cue
var schemaCUE []byte

// ErrUnsupportedFormat is returned when a definition file has an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format is the encoding of a definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Loader decodes definitions against the plugin schema.
type Loader struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewLoader compiles the embedded schema.
func NewLoader() (*Loader, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Plugin"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Plugin definition")
	}

	return &Loader{ctx: ctx, schema: def}, nil
}

// LoadFile reads and decodes the definition at path.
func (l *Loader) LoadFile(path string) (plugin.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return plugin.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return plugin.Config{}, oerrors.NewNotFoundError(
				"plugin definition does not exist",
				path,
				"Run 'wpforge init' to create one",
			)
		}
		return plugin.Config{}, fmt.Errorf("reading definition: %w", err)
	}

	return l.Decode(data, format, path)
}

// Decode unifies data with the schema and returns the resulting config.
// An empty basic.slug is derived from basic.name.
func (l *Loader) Decode(data []byte, format Format, location string) (plugin.Config, error) {
	value, err := l.compile(data, format, location)
	if err != nil {
		return plugin.Config{}, &oerrors.DetailError{
			Type:     "invalid definition",
			Message:  err.Error(),
			Location: location,
			Cause:    oerrors.ErrValidation,
		}
	}

	unified := l.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return plugin.Config{}, &oerrors.DetailError{
			Type:     "schema validation failed",
			Message:  FormatCUEErrors(err),
			Location: location,
			Hint:     "Check field names and enum values against 'wpforge init' output",
			Cause:    oerrors.ErrValidation,
		}
	}

	raw, err := unified.MarshalJSON()
	if err != nil {
		return plugin.Config{}, fmt.Errorf("encoding definition: %w", err)
	}

	var cfg plugin.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return plugin.Config{}, fmt.Errorf("decoding definition: %w", err)
	}

	if cfg.Basic.Slug == "" {
		cfg.Basic.Slug = naming.Slugify(cfg.Basic.Name)
	}

	return cfg, nil
}

func (l *Loader) compile(data []byte, format Format, location string) (cue.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return l.ctx.CompileString("{}"), nil
	}

	var opts []cue.BuildOption
	switch format {
	case FormatYAML:
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return cue.Value{}, fmt.Errorf("parsing YAML: %w", err)
		}
		data = converted
	case FormatJSON:
		if !json.Valid(data) {
			return cue.Value{}, fmt.Errorf("parsing JSON: malformed document")
		}
		opts = append(opts, cue.Filename(location))
	case FormatCUE:
		opts = append(opts, cue.Filename(location))
	default:
		return cue.Value{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	value := l.ctx.CompileBytes(data, opts...)
	if value.Err() != nil {
		return cue.Value{}, fmt.Errorf("compiling %s: %w", format, value.Err())
	}
	if value.IncompleteKind() != cue.StructKind {
		return cue.Value{}, fmt.Errorf("definition must be a mapping, got %s", value.IncompleteKind())
	}
	return value, nil
}

// Check runs the semantic rules of plugin.Validate and reports failures as
// a validation DetailError.
func Check(cfg plugin.Config, location string) error {
	err := plugin.Validate(cfg)
	if err == nil {
		return nil
	}

	detail := &oerrors.DetailError{
		Type:     "validation failed",
		Message:  err.Error(),
		Location: location,
		Hint:     "Fix the listed fields and run 'wpforge vet' again",
		Cause:    oerrors.ErrValidation,
	}

	var verrs plugin.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) == 1 {
		detail.Field = verrs[0].Path
		detail.Message = verrs[0].Message
	}
	return detail
}
