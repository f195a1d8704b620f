package output

import "strings"

// OutputFormat specifies how a result is printed or written.
type OutputFormat string

const (
	// FormatTree prints a file tree.
	FormatTree OutputFormat = "tree"

	// FormatYAML prints a YAML mapping.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON prints a JSON mapping.
	FormatJSON OutputFormat = "json"

	// FormatDir writes a plugin directory.
	FormatDir OutputFormat = "dir"

	// FormatZip writes a zip archive.
	FormatZip OutputFormat = "zip"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTree, FormatYAML, FormatJSON, FormatDir, FormatZip:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses s. Unknown values are returned as-is so callers
// can reject them with IsValid.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	case "tree", "":
		return FormatTree
	case "dir", "directory":
		return FormatDir
	case "zip":
		return FormatZip
	default:
		return OutputFormat(strings.ToLower(s))
	}
}

// ValidPreviewFormats returns the formats accepted by preview.
func ValidPreviewFormats() []string {
	return []string{"tree", "json", "yaml"}
}

// ValidGenerateFormats returns the formats accepted by generate.
func ValidGenerateFormats() []string {
	return []string{"dir", "zip"}
}
