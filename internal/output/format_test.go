package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormatIsValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatTree, true},
		{FormatYAML, true},
		{FormatJSON, true},
		{FormatDir, true},
		{FormatZip, true},
		{OutputFormat("table"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{"yaml", FormatYAML},
		{"YML", FormatYAML},
		{"json", FormatJSON},
		{"", FormatTree},
		{"tree", FormatTree},
		{"directory", FormatDir},
		{"ZIP", FormatZip},
		{"xml", OutputFormat("xml")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOutputFormat(tt.input))
		})
	}
}

func TestValidFormats(t *testing.T) {
	for _, f := range ValidPreviewFormats() {
		assert.True(t, ParseOutputFormat(f).IsValid(), f)
	}
	for _, f := range ValidGenerateFormats() {
		assert.True(t, ParseOutputFormat(f).IsValid(), f)
	}
}
