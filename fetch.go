package oasdoc

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/erraggy/oasdoc/oaserrors"
)

// defaultFetchTimeout bounds URL fetches when no custom client is configured.
const defaultFetchTimeout = 30 * time.Second

// fetchURL retrieves a document over HTTP and returns the body together with
// the response Content-Type, which helps format detection when the URL path
// has no recognizable extension.
func (cfg *loadConfig) fetchURL(urlStr string) ([]byte, string, error) {
	client := cfg.httpClient
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", &oaserrors.IOError{Path: urlStr, Op: "fetch", Cause: err}
	}
	req.Header.Set("User-Agent", cfg.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", &oaserrors.IOError{Path: urlStr, Op: "fetch", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &oaserrors.IOError{
			Path:  urlStr,
			Op:    "fetch",
			Cause: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status),
		}
	}

	body := io.Reader(resp.Body)
	if cfg.maxSourceSize > 0 {
		// Read one byte past the cap so the caller can tell capped from exact.
		body = io.LimitReader(resp.Body, cfg.maxSourceSize+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, "", &oaserrors.IOError{Path: urlStr, Op: "read", Cause: err}
	}

	return data, resp.Header.Get("Content-Type"), nil
}
