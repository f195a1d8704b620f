package render

import (
	"strconv"
	"strings"
	"text/template"
)

var (
	singleQuoted = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	doubleQuoted = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)
	poString     = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	docComment   = strings.NewReplacer("*/", "* /", "?>", "? >", "\r\n", " ", "\n", " ", "\r", " ")
)

// phpString escapes s for a single-quoted PHP literal.
func phpString(s string) string { return singleQuoted.Replace(s) }

// phpDoubleQuoted escapes s for a double-quoted PHP literal.
func phpDoubleQuoted(s string) string { return doubleQuoted.Replace(s) }

func phpBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// phpList renders values as a comma separated list of single-quoted literals.
func phpList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + phpString(v) + "'"
	}
	return strings.Join(quoted, ", ")
}

func menuPosition(pos int) string {
	if pos == 0 {
		return "null"
	}
	return strconv.Itoa(pos)
}

var funcs = template.FuncMap{
	"php":          phpString,
	"po":           poString.Replace,
	"comment":      docComment.Replace,
	"bool":         phpBool,
	"list":         phpList,
	"lower":        strings.ToLower,
	"menuPosition": menuPosition,
}
