package executor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"catalog-tool/internal/logging"
	"catalog-tool/internal/util"
)

// ErrTransport marks failures that happened before any response arrived.
var ErrTransport = errors.New("request failed")

// ExecuteRequest sends req once and reads the whole response body.
// The returned response's Body is replaced with a reader over the same bytes,
// so callers may read it again. There is no retry.
func ExecuteRequest(client *http.Client, req *http.Request) (*http.Response, []byte, error) {
	logging.Logf(logging.Debug, "Sending request: %s %s", req.Method, req.URL.String())
	if len(req.Header) > 0 {
		logging.Logf(logging.Debug, "Request Headers: %v", req.Header)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	bodyBytes, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		return resp, nil, fmt.Errorf("failed to read response body (status %d): %w", resp.StatusCode, readErr)
	}
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	logging.Logf(logging.Debug, "Response Status: %d", resp.StatusCode)
	logging.Logf(logging.Debug, "Response Body Snippet: %s", util.Snippet(bodyBytes))
	return resp, bodyBytes, nil
}

// IsSuccess reports whether code is in the 2xx range.
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
