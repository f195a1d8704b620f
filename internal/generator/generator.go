// Package generator assembles the complete file tree of a plugin.
//
// Assembly is a pure function of the configuration: it performs no I/O,
// keeps no state between calls and always returns the same paths in the same
// order for the same input. It does not validate its input; callers run
// plugin.Validate first.
package generator

import (
	"github.com/wpforge/cli/internal/plugin"
	"github.com/wpforge/cli/internal/render"
)

// Options tune assembly beyond what the configuration describes.
type Options struct {
	// Assets adds placeholder stylesheet and script files for both sides.
	Assets bool
}

// Assemble returns the file set of cfg with default options.
func Assemble(cfg plugin.Config) *FileSet {
	return AssembleWithOptions(cfg, Options{})
}

// AssembleWithOptions returns the file set of cfg.
func AssembleWithOptions(cfg plugin.Config, opts Options) *FileSet {
	r := render.New(cfg)
	slug := cfg.Basic.Slug
	fs := NewFileSet()

	fs.add(slug+".php", r.RootFile())

	fs.add("includes/class-"+slug+".php", r.Orchestrator())
	fs.add("includes/class-"+slug+"-loader.php", r.Loader())
	fs.add("includes/class-"+slug+"-i18n.php", r.I18n())
	fs.add("includes/class-"+slug+"-activator.php", r.Activator())
	fs.add("includes/class-"+slug+"-deactivator.php", r.Deactivator())
	fs.add("includes/index.php", render.IndexGuard)

	fs.add("admin/class-"+slug+"-admin.php", r.AdminClass())
	fs.add("admin/"+slug+"-admin-display.php", r.AdminDisplay())
	fs.add("admin/index.php", render.IndexGuard)
	if opts.Assets {
		fs.add("admin/css/"+slug+"-admin.css", r.Stylesheet(render.SideAdmin))
		fs.add("admin/css/index.php", render.IndexGuard)
		fs.add("admin/js/"+slug+"-admin.js", r.Script(render.SideAdmin))
		fs.add("admin/js/index.php", render.IndexGuard)
	}

	fs.add("public/class-"+slug+"-public.php", r.PublicClass())
	fs.add("public/"+slug+"-public-display.php", r.PublicDisplay())
	fs.add("public/index.php", render.IndexGuard)
	if opts.Assets {
		fs.add("public/css/"+slug+"-public.css", r.Stylesheet(render.SidePublic))
		fs.add("public/css/index.php", render.IndexGuard)
		fs.add("public/js/"+slug+"-public.js", r.Script(render.SidePublic))
		fs.add("public/js/index.php", render.IndexGuard)
	}
	if cfg.Features.Shortcodes {
		for _, s := range r.Shortcodes() {
			fs.add("public/shortcodes/"+s.Tag+".php", r.ShortcodeTemplate(s))
		}
		fs.add("public/shortcodes/index.php", render.IndexGuard)
	}

	fs.add("languages/"+slug+".pot", r.POT())
	fs.add("languages/index.php", render.IndexGuard)

	fs.add("readme.txt", r.Readme())
	fs.add("index.php", render.IndexGuard)

	return fs
}
