package oasdoc

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdoc/oaserrors"
)

const urlTestV3YAML = `openapi: "3.0.3"
info:
  title: URL Test API
  version: 1.0.0
paths:
  /users:
    get:
      responses:
        '200':
          description: Success
`

const urlTestV2JSON = `{
  "swagger": "2.0",
  "info": {
    "title": "URL Test API",
    "version": "1.0.0"
  },
  "paths": {
    "/users": {
      "get": {
        "responses": {
          "200": {
            "description": "Success"
          }
        }
      }
    }
  }
}`

// TestFetchURL tests URL fetching with a test server
func TestFetchURL(t *testing.T) {
	tests := []struct {
		name          string
		setupServer   func() *httptest.Server
		expectError   bool
		errorContains string
	}{
		{
			name: "successful fetch with 200 OK",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/yaml")
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(urlTestV3YAML))
				}))
			},
			expectError: false,
		},
		{
			name: "404 not found",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
					_, _ = w.Write([]byte("Not Found"))
				}))
			},
			expectError:   true,
			errorContains: "HTTP 404",
		},
		{
			name: "500 internal server error",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte("Internal Server Error"))
				}))
			},
			expectError:   true,
			errorContains: "HTTP 500",
		},
		{
			name: "401 unauthorized",
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte("Unauthorized"))
				}))
			},
			expectError:   true,
			errorContains: "HTTP 401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tt.setupServer()
			defer server.Close()

			cfg := &loadConfig{userAgent: UserAgent()}
			data, contentType, err := cfg.fetchURL(server.URL)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, oaserrors.ErrIO)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, data)
				assert.Contains(t, string(data), "URL Test API")
				assert.Equal(t, "application/yaml", contentType)
			}
		})
	}
}

// TestLoadFromURL tests end-to-end loading from URLs
func TestLoadFromURL(t *testing.T) {
	tests := []struct {
		name        string
		urlPath     string
		content     string
		contentType string
		validate    func(*testing.T, *Doc)
	}{
		{
			name:        "load OAS 3.0 YAML from URL",
			urlPath:     "/api/spec.yaml",
			content:     urlTestV3YAML,
			contentType: "application/yaml",
			validate: func(t *testing.T, doc *Doc) {
				assert.Equal(t, "3.0.3", doc.Version())
				assert.Equal(t, OASVersion303, doc.OASVersion())
				v3, ok := doc.V3()
				require.True(t, ok)
				assert.Equal(t, "URL Test API", v3.Info.Title)
				assert.Equal(t, SourceFormatYAML, doc.SourceFormat())
			},
		},
		{
			name:        "load OAS 2.0 JSON from URL",
			urlPath:     "/api/spec.json",
			content:     urlTestV2JSON,
			contentType: "application/json",
			validate: func(t *testing.T, doc *Doc) {
				assert.Equal(t, "2.0", doc.Version())
				assert.Equal(t, OASVersion20, doc.OASVersion())
				v2, ok := doc.V2()
				require.True(t, ok)
				assert.Equal(t, "URL Test API", v2.Info.Title)
				assert.Equal(t, SourceFormatJSON, doc.SourceFormat())
			},
		},
		{
			name:        "URL is preserved in SourceName",
			urlPath:     "/api/openapi.yaml",
			content:     urlTestV3YAML,
			contentType: "application/yaml",
			validate: func(t *testing.T, doc *Doc) {
				assert.Contains(t, doc.SourceName(), "http://")
				assert.Contains(t, doc.SourceName(), "/api/openapi.yaml")
			},
		},
		{
			name:        "format detection from URL extension",
			urlPath:     "/spec.json",
			content:     urlTestV2JSON,
			contentType: "",
			validate: func(t *testing.T, doc *Doc) {
				assert.Equal(t, SourceFormatJSON, doc.SourceFormat())
			},
		},
		{
			name:        "format detection from Content-Type (no extension)",
			urlPath:     "/api/spec",
			content:     urlTestV3YAML,
			contentType: "application/yaml",
			validate: func(t *testing.T, doc *Doc) {
				assert.Equal(t, SourceFormatYAML, doc.SourceFormat())
				assert.Equal(t, "3.0.3", doc.Version())
			},
		},
		{
			name:        "format detection from Content-Type with charset (no extension)",
			urlPath:     "/openapi",
			content:     urlTestV2JSON,
			contentType: "application/json; charset=utf-8",
			validate: func(t *testing.T, doc *Doc) {
				assert.Equal(t, SourceFormatJSON, doc.SourceFormat())
				assert.Equal(t, "2.0", doc.Version())
			},
		},
		{
			name:        "format sniffed from body (no extension, no content-type)",
			urlPath:     "/raw",
			content:     urlTestV2JSON,
			contentType: "",
			validate: func(t *testing.T, doc *Doc) {
				assert.Equal(t, SourceFormatJSON, doc.SourceFormat())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.urlPath {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				} else {
					// httptest sniffs a Content-Type when none is set; an
					// explicit empty value suppresses that.
					w.Header()["Content-Type"] = nil
				}
				_, _ = w.Write([]byte(tt.content))
			}))
			defer server.Close()

			doc, err := FromPath(server.URL + tt.urlPath)
			require.NoError(t, err)
			assert.Positive(t, doc.LoadTime())
			tt.validate(t, doc)
		})
	}
}

func TestLoadFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	doc, err := FromPath(server.URL + "/missing.yaml")
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrIO)

	var ioe *oaserrors.IOError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, "fetch", ioe.Op)
	assert.Contains(t, err.Error(), "HTTP 404")
}

// TestUserAgentHeader tests the User-Agent sent when fetching URLs
func TestUserAgentHeader(t *testing.T) {
	var receivedUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(urlTestV2JSON))
	}))
	defer server.Close()

	t.Run("default user agent", func(t *testing.T) {
		receivedUserAgent = ""
		_, err := FromPath(server.URL + "/spec.json")
		require.NoError(t, err)
		assert.Equal(t, UserAgent(), receivedUserAgent)
		assert.True(t, strings.HasPrefix(receivedUserAgent, "oasdoc/"))
	})

	t.Run("custom user agent", func(t *testing.T) {
		receivedUserAgent = ""
		_, err := FromPath(server.URL+"/spec.json", WithUserAgent("myapp/2.1"))
		require.NoError(t, err)
		assert.Equal(t, "myapp/2.1", receivedUserAgent)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestWithHTTPClientIsUsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(urlTestV2JSON))
	}))
	defer server.Close()

	var used bool
	client := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			used = true
			return http.DefaultTransport.RoundTrip(req)
		}),
	}

	doc, err := FromPath(server.URL+"/spec.json", WithHTTPClient(client))
	require.NoError(t, err)
	assert.True(t, used)
	assert.True(t, doc.IsV2())
}

func TestLoadFromURL_SizeCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(urlTestV2JSON))
	}))
	defer server.Close()

	doc, err := FromPath(server.URL+"/spec.json", WithMaxSourceSize(16))
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrIO)
	assert.Contains(t, err.Error(), "exceeds maximum size limit")
}
