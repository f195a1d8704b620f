// Package naming derives the identifiers shared by every generated file.
//
// All functions are pure: the same slug always yields the same identifiers,
// which is what keeps class names and constant prefixes consistent across
// the generated tree.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifiers holds every name derived from a plugin slug.
type Identifiers struct {
	// Slug is the source slug (e.g. "my-plugin").
	Slug string

	// ConstantPrefix prefixes generated constants (e.g. "MY_PLUGIN").
	ConstantPrefix string

	// ClassToken names the generated classes (e.g. "My_Plugin").
	ClassToken string

	// FunctionToken is the infix of generated function names (e.g. "my_plugin").
	FunctionToken string
}

// Derive computes all identifiers for a slug.
func Derive(slug string) Identifiers {
	return Identifiers{
		Slug:           slug,
		ConstantPrefix: ConstantPrefix(slug),
		ClassToken:     ClassToken(slug),
		FunctionToken:  FunctionToken(slug),
	}
}

// ConstantPrefix maps every non-alphanumeric byte to '_' and upper-cases the result.
func ConstantPrefix(slug string) string {
	b := make([]byte, 0, len(slug))
	for i := 0; i < len(slug); i++ {
		c := slug[i]
		if isAlnum(c) {
			b = append(b, c)
		} else {
			b = append(b, '_')
		}
	}
	return strings.ToUpper(string(b))
}

// ClassToken treats '-' and '_' as word separators, title-cases each word
// and joins the words with '_'. "my_cool-plugin" becomes "My_Cool_Plugin".
func ClassToken(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	caser := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, "_")
}

// FunctionToken replaces '-' with '_'.
func FunctionToken(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// MethodToken turns an arbitrary id, tag or route into a string usable as a
// method name fragment. Runs of non-identifier bytes collapse to a single '_'
// and leading/trailing underscores are trimmed.
func MethodToken(s string) string {
	b := make([]byte, 0, len(s))
	pendingSep := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) || c == '_' {
			if pendingSep && len(b) > 0 {
				b = append(b, '_')
			}
			pendingSep = false
			b = append(b, c)
			continue
		}
		pendingSep = true
	}
	return strings.Trim(string(b), "_")
}

// Slugify derives a slug from a human-readable name the same way the wizard
// does: lower-case, runs of anything but [a-z0-9] become '-', and dashes at
// either end are dropped.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	b := make([]byte, 0, len(lower))
	pendingDash := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			if pendingDash && len(b) > 0 {
				b = append(b, '-')
			}
			pendingDash = false
			b = append(b, c)
			continue
		}
		pendingDash = true
	}
	return string(b)
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
