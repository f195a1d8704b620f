package definition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
	"gopkg.in/yaml.v3"

	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/plugin"
)

// Starter returns a definition with the given header and features enabled.
// Each enabled feature that has a section gets one example entry so the
// written file shows the expected shape.
func Starter(basic plugin.BasicInfo, features []plugin.Feature) plugin.Config {
	mutators := []plugin.Mutator{plugin.WithBasic(basic)}
	for _, f := range features {
		mutators = append(mutators, plugin.WithFeature(f, true))
	}

	cfg := plugin.Default().With(mutators...)
	for _, f := range features {
		switch f {
		case plugin.FeatureSettings:
			cfg = cfg.With(plugin.AddSettingsGroup(plugin.DefaultSettingsGroup()))
		case plugin.FeatureCustomContentTypes:
			book := plugin.NewContentType("Book", "book", "Book", "Books")
			if cfg.Features.CustomTaxonomies {
				book.Taxonomies = append(book.Taxonomies, plugin.NewTaxonomy("Genre", "genre", "Genre", "Genres"))
			}
			cfg = cfg.With(plugin.AddContentType(book))
		case plugin.FeatureShortcodes:
			cfg = cfg.With(plugin.AddShortcode(plugin.DefaultShortcode(cfg.Basic.Slug)))
		case plugin.FeatureRestAPI:
			cfg = cfg.With(plugin.AddEndpoint(plugin.DefaultEndpoint()))
		case plugin.FeatureDatabase:
			cfg = cfg.With(plugin.AddTable(starterTable()))
		}
	}
	return cfg
}

func starterTable() plugin.TableDef {
	return plugin.TableDef{
		Name:        "items",
		Description: "Example table",
		Columns: []plugin.ColumnDef{
			{Name: "id", Type: plugin.SQLBigInt, Length: "20", Primary: true, Unique: true, AutoIncrement: true},
			{Name: "title", Type: plugin.SQLVarchar, Length: "255"},
			{Name: "created_at", Type: plugin.SQLDateTime, Indexed: true},
		},
	}
}

// Encode serialises cfg in the given format.
func Encode(cfg plugin.Config, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return encodeYAML(cfg)
	case FormatCUE:
		return encodeCUE(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// encodeYAML goes through a yaml.Node so keys keep the struct order.
func encodeYAML(cfg plugin.Config) ([]byte, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding definition: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("converting to YAML: %w", err)
	}
	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// encodeCUE compiles the JSON form so field order and omitted empties match
// the other encodings.
func encodeCUE(cfg plugin.Config) ([]byte, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding definition: %w", err)
	}

	v := cuecontext.New().CompileBytes(raw)
	if v.Err() != nil {
		return nil, fmt.Errorf("encoding CUE: %w", v.Err())
	}
	node := v.Syntax(cue.Final(), cue.Concrete(true))
	if st, ok := node.(*ast.StructLit); ok {
		node = &ast.File{Decls: st.Elts}
	}
	src, err := format.Node(node)
	if err != nil {
		return nil, fmt.Errorf("formatting CUE: %w", err)
	}
	return append(src, '\n'), nil
}

// WriteFile encodes cfg in the format implied by path and writes it.
// An existing file is only replaced when force is set.
func WriteFile(path string, cfg plugin.Config, force bool) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return oerrors.NewExistsError(
				"definition file already exists",
				path,
				"Use --force to overwrite",
			)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	data, err := Encode(cfg, f)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
