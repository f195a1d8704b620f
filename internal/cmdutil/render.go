package cmdutil

import (
	"fmt"

	"github.com/wpforge/cli/internal/definition"
	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/generator"
	"github.com/wpforge/cli/internal/output"
	"github.com/wpforge/cli/internal/plugin"
)

// LoadDefinition reads the definition at path, unifies it with the schema and
// runs the semantic checks. Every error is an *ExitError carrying the exit
// code for its cause; validation failures are printed here and marked so.
func LoadDefinition(path string) (plugin.Config, error) {
	loader, err := definition.NewLoader()
	if err != nil {
		return plugin.Config{}, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	output.Debug("loading definition", "path", path)

	cfg, err := loader.LoadFile(path)
	if err != nil {
		return plugin.Config{}, definitionExit(err, oerrors.ExitCodeFromError(err))
	}

	if err := definition.Check(cfg, path); err != nil {
		return plugin.Config{}, definitionExit(err, oerrors.ExitValidationError)
	}

	output.Debug("definition loaded",
		"slug", cfg.Basic.Slug,
		"features", len(cfg.Features.EnabledList()),
	)
	return cfg, nil
}

func definitionExit(err error, code int) error {
	if code != oerrors.ExitValidationError {
		return &oerrors.ExitError{Code: code, Err: err}
	}
	PrintValidationError("definition is invalid", err)
	return &oerrors.ExitError{Code: code, Err: err, Printed: true}
}

// AssembleOpts holds the inputs for Assemble.
type AssembleOpts struct {
	// Args from the cobra command (first arg is the definition path).
	Args []string
	// Assets adds the CSS/JS asset files.
	Assets bool
}

// Assemble loads the definition named by the args and assembles its file set.
func Assemble(opts AssembleOpts) (plugin.Config, *generator.FileSet, error) {
	path := ResolveDefinitionPath(opts.Args)

	cfg, err := LoadDefinition(path)
	if err != nil {
		return plugin.Config{}, nil, err
	}

	set := generator.AssembleWithOptions(cfg, generator.Options{Assets: opts.Assets})

	output.PluginLogger(cfg.Basic.Slug).Debug("assembled",
		"files", set.Len(),
		"size", output.HumanSize(set.Size()),
	)
	return cfg, set, nil
}

// NotFound wraps a not-found detail error into an *ExitError.
func NotFound(message, location, hint string) error {
	return &oerrors.ExitError{
		Code: oerrors.ExitNotFound,
		Err:  oerrors.NewNotFoundError(message, location, hint),
	}
}

// Exit wraps err into an *ExitError with the code derived from its cause.
// A nil err stays nil and an *ExitError is returned unchanged.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*oerrors.ExitError); ok {
		return err
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}

// Exitf wraps a formatted general error into an *ExitError.
func Exitf(format string, args ...any) error {
	return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf(format, args...)}
}
