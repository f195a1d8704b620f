package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures_CanonicalOrder(t *testing.T) {
	features := Features()
	require.Len(t, features, 13)
	assert.Equal(t, FeatureAdminPage, features[0])
	assert.Equal(t, FeatureAjax, features[len(features)-1])

	// The returned slice is a copy.
	features[0] = "mutated"
	assert.Equal(t, FeatureAdminPage, Features()[0])
}

func TestFeatureFlags_SetAndEnabled(t *testing.T) {
	for _, f := range Features() {
		t.Run(string(f), func(t *testing.T) {
			var flags FeatureFlags
			require.NoError(t, flags.Set(f, true))
			assert.True(t, flags.Enabled(f))
			assert.Equal(t, []Feature{f}, flags.EnabledList())

			require.NoError(t, flags.Set(f, false))
			assert.False(t, flags.Enabled(f))
			assert.Empty(t, flags.EnabledList())
		})
	}
}

func TestFeatureFlags_SetUnknown(t *testing.T) {
	var flags FeatureFlags
	err := flags.Set("teleport", true)
	assert.Error(t, err)
	assert.False(t, flags.Enabled("teleport"))
}

func TestFeatureFlags_EnabledListOrder(t *testing.T) {
	flags := FeatureFlags{Ajax: true, RestAPI: true, AdminPage: true}
	assert.Equal(t, []Feature{FeatureAdminPage, FeatureRestAPI, FeatureAjax}, flags.EnabledList())
}

func TestParseFeature(t *testing.T) {
	tests := []struct {
		input    string
		expected Feature
		wantErr  bool
	}{
		{input: "restApi", expected: FeatureRestAPI},
		{input: "RESTAPI", expected: FeatureRestAPI},
		{input: "customContentTypes", expected: FeatureCustomContentTypes},
		{input: "nope", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFeature(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFeature_Title(t *testing.T) {
	assert.Equal(t, "REST API", FeatureRestAPI.Title())
	assert.Equal(t, "unknown", Feature("unknown").Title())
}
