// Package ddl renders CREATE TABLE statements for custom plugin tables in the
// shape dbDelta expects.
package ddl

import (
	"strings"

	"github.com/wpforge/cli/internal/plugin"
)

// ColumnDefinition renders one column line:
//
//	name TYPE[(length)] NULL|NOT NULL [DEFAULT 'value'] [AUTO_INCREMENT]
func ColumnDefinition(col plugin.ColumnDef) string {
	var b strings.Builder
	b.WriteString(col.Name)
	b.WriteByte(' ')
	b.WriteString(strings.ToUpper(string(col.Type)))
	if col.Length != "" && col.Type.TakesLength() {
		b.WriteByte('(')
		b.WriteString(string(col.Length))
		b.WriteByte(')')
	}
	if col.Nullable {
		b.WriteString(" NULL")
	} else {
		b.WriteString(" NOT NULL")
	}
	if col.DefaultValue != "" {
		b.WriteString(" DEFAULT '")
		b.WriteString(strings.ReplaceAll(col.DefaultValue, "'", "''"))
		b.WriteByte('\'')
	}
	if col.AutoIncrement {
		b.WriteString(" AUTO_INCREMENT")
	}
	return b.String()
}

// KeyClauses returns the key clauses of a table in fixed order: the primary
// key of the first primary column, a unique key for each non-primary unique
// column, then a plain key for each indexed column that is neither.
//
// dbDelta requires two spaces after PRIMARY KEY.
func KeyClauses(cols []plugin.ColumnDef) []string {
	var primary, unique, index []string
	for _, col := range cols {
		switch {
		case col.Primary:
			if primary == nil {
				primary = []string{"PRIMARY KEY  (" + col.Name + ")"}
			}
		case col.Unique:
			unique = append(unique, "UNIQUE KEY "+col.Name+"_unique ("+col.Name+")")
		case col.Indexed:
			index = append(index, "KEY "+col.Name+"_index ("+col.Name+")")
		}
	}
	out := make([]string, 0, len(primary)+len(unique)+len(index))
	out = append(out, primary...)
	out = append(out, unique...)
	return append(out, index...)
}

// Body returns the comma-separated column and key lines of a table, each
// prefixed by indent.
func Body(t plugin.TableDef, indent string) string {
	lines := make([]string, 0, len(t.Columns)+2)
	for _, col := range t.Columns {
		lines = append(lines, ColumnDefinition(col))
	}
	lines = append(lines, KeyClauses(t.Columns)...)
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, ",\n")
}

// CreateTable renders a complete statement for table, named prefix+t.Name and
// closed by the given charset clause. prefix and charset are emitted verbatim
// so callers can pass PHP interpolations such as "{$wpdb->prefix}".
func CreateTable(prefix, charset string, t plugin.TableDef) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(prefix)
	b.WriteString(t.Name)
	b.WriteString(" (\n")
	b.WriteString(Body(t, "  "))
	b.WriteString("\n)")
	if charset != "" {
		b.WriteByte(' ')
		b.WriteString(charset)
	}
	b.WriteByte(';')
	return b.String()
}
