package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"resume_portal_backend/platform/apperr"
)

// HTTPClient is the Client implementation backed by the resume portal API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a client for the API at baseURL (e.g.
// "http://localhost:8080/api"). A nil httpClient uses a default with a
// 15 second timeout.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SubmitLead stores the visitor's contact details on the backend.
func (c *HTTPClient) SubmitLead(ctx context.Context, lead Lead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, UnexpectedErrorMessage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/leads", bytes.NewReader(body))
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, UnexpectedErrorMessage, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, UnexpectedErrorMessage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		// The duplicate message is plain text and shown to the visitor as-is.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperr.Conflict(strings.TrimSpace(string(msg)))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperr.Internal(UnexpectedErrorMessage)
	}

	// The confirmation payload is opaque to the widgets.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// FetchLikeCount reads the current like count, degrading to zero on any error.
func (c *HTTPClient) FetchLikeCount(ctx context.Context) int64 {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/likes", nil)
	if err != nil {
		return 0
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0
	}

	var payload struct {
		Count int64 `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0
	}
	return payload.Count
}

// MutateLikeCount applies a named action and returns the new count.
func (c *HTTPClient) MutateLikeCount(ctx context.Context, action LikeAction) (int64, error) {
	body, err := json.Marshal(map[string]string{"action": string(action)})
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, UpdateFailedMessage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/likes", bytes.NewReader(body))
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, UpdateFailedMessage, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindUnavailable, UpdateFailedMessage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, apperr.Internal(UpdateFailedMessage)
	}

	var payload struct {
		Count int64 `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, UpdateFailedMessage, err)
	}
	return payload.Count, nil
}
