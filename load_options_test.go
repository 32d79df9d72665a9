package oasdoc

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdoc/oaserrors"
)

func TestLoad_NoInputSource(t *testing.T) {
	doc, err := Load()
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
	assert.Contains(t, err.Error(), "must specify an input source")
}

func TestLoad_MultipleInputSources(t *testing.T) {
	doc, err := Load(WithBytes([]byte(minimalV2JSON)), WithString(minimalV3JSON))
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
	assert.Contains(t, err.Error(), "exactly one input source")
}

func TestLoad_InvalidOptionValues(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantOption string
	}{
		{"nil bytes", []Option{WithBytes(nil)}, "WithBytes"},
		{"nil reader", []Option{WithReader(nil)}, "WithReader"},
		{"negative max depth", []Option{WithString(minimalV2JSON), WithMaxDepth(-1)}, "WithMaxDepth"},
		{"negative max source size", []Option{WithString(minimalV2JSON), WithMaxSourceSize(-5)}, "WithMaxSourceSize"},
		{"empty source name", []Option{WithString(minimalV2JSON), WithSourceName("")}, "WithSourceName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(tt.opts...)
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)

			var ce *oaserrors.ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.wantOption, ce.Option)
		})
	}
}

func TestLoad_ZeroLimitsMeanDefaults(t *testing.T) {
	// MaxDepth 0 uses the decoder default, MaxSourceSize 0 means unlimited.
	doc, err := Load(WithString(minimalV2JSON), WithMaxDepth(0), WithMaxSourceSize(0))
	require.NoError(t, err)
	assert.True(t, doc.IsV2())
}

// Configuration problems surface before any I/O: a bad option plus a missing
// file reports the option, not the file.
func TestLoad_ConfigErrorBeforeIO(t *testing.T) {
	doc, err := Load(WithFilePath("/nonexistent/api.yaml"), WithMaxDepth(-1))
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
	assert.NotErrorIs(t, err, oaserrors.ErrIO)
}

func TestDecodeOptions_RejectInputSources(t *testing.T) {
	for _, opt := range []struct {
		name string
		o    Option
	}{
		{"WithFilePath", WithFilePath("api.yaml")},
		{"WithBytes", WithBytes([]byte("{}"))},
		{"WithString", WithString("{}")},
	} {
		t.Run(opt.name, func(t *testing.T) {
			_, err := DecodeV2([]byte(minimalV2JSON), opt.o)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.Contains(t, err.Error(), "pass the document bytes directly")
		})
	}
}

func TestWithHTTPClientAndUserAgentOptions(t *testing.T) {
	// These options apply only to URL sources; setting them alongside other
	// sources is allowed and inert.
	client := &http.Client{Timeout: 5 * time.Second}
	doc, err := Load(
		WithString(minimalV3JSON),
		WithHTTPClient(client),
		WithUserAgent("custom/1.0"),
	)
	require.NoError(t, err)
	assert.True(t, doc.IsV3())
}
