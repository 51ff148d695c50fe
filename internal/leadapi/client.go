// Package leadapi implements the HTTP client for the remote lead API.
// The API is a single REST-ish endpoint: GET lists or fetches by id,
// POST creates, PUT updates (partial, keyed by ?id=), DELETE removes.
package leadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-retryablehttp"

	"leadline/internal/lead"
	"leadline/internal/log"
)

// ErrNotFound is returned when the API reports a missing lead through
// the error field of an otherwise successful response envelope.
var ErrNotFound = errors.New("lead not found")

// APIError is an error reported by the API inside a response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// ListQuery captures every input that affects which leads are returned.
type ListQuery struct {
	Page      int    `url:"page"`
	PerPage   int    `url:"per_page"`
	SortField string `url:"sort_field"`
	SortOrder string `url:"sort_order"`
	Search    string `url:"search,omitempty"`
	Tags      string `url:"tags,omitempty"`
	// Filters are arbitrary recognized filter keys (stage, priority,
	// assigned_to, budget_min, ...) appended verbatim to the query.
	Filters map[string]string `url:"-"`
}

// Values encodes the query into URL parameters.
func (q ListQuery) Values() (url.Values, error) {
	v, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("encoding list query: %w", err)
	}
	for key, val := range q.Filters {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v, nil
}

// Meta is the pagination metadata of a list response. The server
// sometimes serializes these counters as quoted strings, so each field
// accepts either form.
type Meta struct {
	Total      FlexInt `json:"total"`
	Page       FlexInt `json:"page"`
	PerPage    FlexInt `json:"per_page"`
	TotalPages FlexInt `json:"total_pages"`
}

// FlexInt decodes a JSON number or a numeric string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %q as int: %w", s, err)
		}
		*f = FlexInt(i)
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	*f = FlexInt(i)
	return nil
}

// ListResponse is a successful page of leads.
type ListResponse struct {
	Leads []lead.Lead
	Meta  Meta
}

// Client talks to the remote lead API. Reads go through a retrying
// transport; mutations are sent exactly once, since a replayed POST or
// PUT whose original response was lost would duplicate a change the
// server already applied.
type Client struct {
	baseURL string
	retry   *retryablehttp.Client
	http    *http.Client
}

// New creates a client for the given endpoint URL.
func New(baseURL string, timeout time.Duration) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = retryLogger{}
	return &Client{
		baseURL: baseURL,
		retry:   rc,
		http:    &http.Client{Timeout: timeout},
	}
}

// retryLogger bridges retryablehttp's logging into the debug log.
type retryLogger struct{}

func (retryLogger) Printf(format string, v ...any) {
	log.Debug(log.CatAPI, fmt.Sprintf(format, v...))
}

// List fetches the page of leads matching the query.
func (c *Client) List(ctx context.Context, q ListQuery) (ListResponse, error) {
	values, err := q.Values()
	if err != nil {
		return ListResponse{}, err
	}

	var envelope struct {
		Data  []lead.Lead `json:"data"`
		Meta  Meta        `json:"meta"`
		Error string      `json:"error"`
	}
	if err := c.do(ctx, http.MethodGet, values, nil, &envelope); err != nil {
		return ListResponse{}, err
	}
	if envelope.Error != "" {
		return ListResponse{}, &APIError{StatusCode: http.StatusOK, Message: envelope.Error}
	}
	return ListResponse{Leads: envelope.Data, Meta: envelope.Meta}, nil
}

// Get fetches a single lead by identifier.
func (c *Client) Get(ctx context.Context, id int) (lead.Lead, error) {
	values := url.Values{"id": {fmt.Sprint(id)}}

	var envelope struct {
		lead.Lead
		Error string `json:"error"`
	}
	if err := c.do(ctx, http.MethodGet, values, nil, &envelope); err != nil {
		return lead.Lead{}, err
	}
	if envelope.Error != "" {
		return lead.Lead{}, fmt.Errorf("%w: %s", ErrNotFound, envelope.Error)
	}
	return envelope.Lead, nil
}

// Create persists a draft lead and returns the server-assigned record.
func (c *Client) Create(ctx context.Context, draft lead.Lead) (lead.Lead, error) {
	var created lead.Lead
	if err := c.do(ctx, http.MethodPost, nil, draft, &created); err != nil {
		return lead.Lead{}, err
	}
	return created, nil
}

// Update sends the full current record as a partial update keyed by id.
func (c *Client) Update(ctx context.Context, id int, l lead.Lead) (lead.Lead, error) {
	values := url.Values{"id": {fmt.Sprint(id)}}
	var updated lead.Lead
	if err := c.do(ctx, http.MethodPut, values, l, &updated); err != nil {
		return lead.Lead{}, err
	}
	return updated, nil
}

// Delete removes a lead by identifier.
func (c *Client) Delete(ctx context.Context, id int) error {
	values := url.Values{"id": {fmt.Sprint(id)}}
	return c.do(ctx, http.MethodDelete, values, nil, nil)
}

func (c *Client) do(ctx context.Context, method string, values url.Values, body any, out any) error {
	endpoint := c.baseURL
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug(log.CatAPI, "request", "method", method, "url", endpoint)

	var resp *http.Response
	if method == http.MethodGet {
		rreq, rerr := retryablehttp.FromRequest(req)
		if rerr != nil {
			return fmt.Errorf("building request: %w", rerr)
		}
		resp, err = c.retry.Do(rreq)
	} else {
		resp, err = c.http.Do(req)
	}
	if err != nil {
		log.ErrorErr(log.CatAPI, "request failed", err, "method", method)
		return fmt.Errorf("%s %s: %w", method, c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&failure); decodeErr == nil {
			if failure.Message != "" {
				apiErr.Message = failure.Message
			} else {
				apiErr.Message = failure.Error
			}
		}
		log.Error(log.CatAPI, "non-2xx response", "method", method, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
