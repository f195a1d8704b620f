package definition

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// FormatCUEErrors renders every CUE error as "path: message", one per line,
// followed by its source positions when known.
func FormatCUEErrors(err error) string {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}

	seen := make(map[string]bool, len(errs))
	var lines []string
	for _, e := range errs {
		var b strings.Builder
		if path := strings.Join(e.Path(), "."); path != "" {
			b.WriteString(path)
			b.WriteString(": ")
		}
		b.WriteString(cueErrorMessage(e))

		for _, p := range cueerrors.Positions(e) {
			pos := p.Position()
			if !pos.IsValid() || pos.Filename == "" || pos.Filename == "schema.cue" {
				continue
			}
			fmt.Fprintf(&b, "\n    → %s:%d:%d", pos.Filename, pos.Line, pos.Column)
		}

		line := b.String()
		if seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func cueErrorMessage(e cueerrors.Error) string {
	var parts []string
	var current error = e

	for current != nil {
		cueErr, ok := current.(cueerrors.Error) //nolint:errorlint // walks the CUE chain by hand
		if !ok {
			parts = append(parts, current.Error())
			break
		}

		format, args := cueErr.Msg()
		if format != "" {
			parts = append(parts, fmt.Sprintf(format, args...))
		}

		current = cueerrors.Unwrap(current)
	}

	return strings.Join(parts, ": ")
}
