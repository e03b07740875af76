// Package netx wraps the JSON-over-HTTP request/response cycle used by the
// REST client.
package netx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 1024

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s failed: status %d; body: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// DoJSON performs a request and treats any non-2xx status as a *StatusError.
//
// A non-nil body is encoded as JSON and sent with Content-Type
// application/json. A non-nil out receives the decoded 2xx response body;
// with a nil out the body is drained and ignored.
func DoJSON(ctx context.Context, hc *http.Client, method, url string, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: string(b)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
