package cmdutil

import (
	"errors"
	"fmt"
	"strconv"

	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/generator"
	"github.com/wpforge/cli/internal/output"
	"github.com/wpforge/cli/internal/plugin"
)

// PrintValidationError prints a validation error in a user-friendly format.
// A DetailError gets a short summary line on the log followed by its full
// text on stderr; anything else falls back to the key-value log format.
func PrintValidationError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Type))
		output.Details(detail.Error())
		return
	}
	output.Error(msg, "error", err)
}

// FeatureTable renders one row per feature in canonical order with its state
// and the number of entries the generator will emit for it.
func FeatureTable(cfg plugin.Config) string {
	tbl := output.NewTable("FEATURE", "ENABLED", "ENTRIES")
	for _, f := range plugin.Features() {
		enabled := cfg.Features.Enabled(f)
		state := "no"
		if enabled {
			state = "yes"
		}
		tbl.Row(f.Title(), state, featureEntries(cfg, f, enabled))
	}
	return tbl.String()
}

func featureEntries(cfg plugin.Config, f plugin.Feature, enabled bool) string {
	if !enabled {
		return "-"
	}

	switch f {
	case plugin.FeatureSettings:
		return strconv.Itoa(len(cfg.EffectiveSettingsGroups()))
	case plugin.FeatureCustomContentTypes:
		return strconv.Itoa(len(cfg.ContentTypes))
	case plugin.FeatureCustomTaxonomies:
		if !cfg.Features.CustomContentTypes {
			return "0"
		}
		n := 0
		for _, ct := range cfg.ContentTypes {
			n += len(ct.Taxonomies)
		}
		return strconv.Itoa(n)
	case plugin.FeatureShortcodes:
		return strconv.Itoa(len(cfg.EffectiveShortcodes()))
	case plugin.FeatureRestAPI:
		return strconv.Itoa(len(cfg.EffectiveEndpoints()))
	case plugin.FeatureDatabase:
		return strconv.Itoa(len(cfg.Tables))
	default:
		return "-"
	}
}

// FileTree renders the file set under the slug with each file's size.
func FileTree(slug string, set *generator.FileSet) string {
	files := make(map[string]string, set.Len())
	for _, f := range set.Files() {
		files[f.Path] = output.HumanSize(len(f.Content))
	}
	return output.RenderFileTree(slug, files)
}
