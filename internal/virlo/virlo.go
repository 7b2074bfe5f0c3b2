// Package virlo is the client for the paid Virlo trend API. It performs
// one bounded outbound call per invocation and normalizes the response;
// caching and credit charging are the session facade's responsibility.
package virlo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/contentcompass/trendcompass/internal/endpoint"
	"github.com/contentcompass/trendcompass/internal/trend"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.virlo.ai"

// DefaultTimeout bounds every outbound call.
const DefaultTimeout = 30 * time.Second

// FetchError reports a failed remote call: transport error, timeout, or
// non-2xx status. It is surfaced to the user as a transient warning and
// never charged.
type FetchError struct {
	Category   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetching %s: HTTP %d (%s)", e.Category, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetching %s: %s", e.Category, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// Client issues authenticated requests against the Virlo API. No retry
// policy: one request per Fetch, pass or fail.
type Client struct {
	http *resty.Client
}

// New builds a client with bearer auth and a fixed request timeout.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	return &Client{http: c}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// Fetch calls the endpoint described by desc with the category's query
// schema applied and returns the normalized envelope. Any non-2xx status
// or transport failure comes back as a *FetchError.
func (c *Client) Fetch(ctx context.Context, desc endpoint.Descriptor, params map[string]any) (trend.Envelope, error) {
	var env trend.Envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(queryParams(desc.Category, params)).
		SetResult(&env).
		Get(desc.Path)
	if err != nil {
		return trend.Empty(), &FetchError{
			Category: desc.Category,
			Message:  "request failed: " + err.Error(),
			Cause:    err,
		}
	}
	if !resp.IsSuccess() {
		return trend.Empty(), &FetchError{
			Category:   desc.Category,
			StatusCode: resp.StatusCode(),
			Message:    summarizeBody(resp.Bytes()),
		}
	}
	if err := trend.Validate(desc.Category, env); err != nil {
		return trend.Empty(), &FetchError{
			Category: desc.Category,
			Message:  "invalid response: " + err.Error(),
			Cause:    err,
		}
	}
	return env, nil
}

// queryParams applies the fixed per-category parameter schema, filling
// defaults the way the reference deployment does.
func queryParams(category string, params map[string]any) map[string]string {
	q := map[string]string{}
	switch category {
	case trend.CategoryHashtags:
		end := time.Now()
		start := end.AddDate(0, 0, -7)
		q["startDate"] = stringParam(params, "start_date", start.Format("2006-01-02"))
		q["endDate"] = stringParam(params, "end_date", end.Format("2006-01-02"))
		q["limit"] = intParam(params, "limit", 50)
		q["orderBy"] = stringParam(params, "order_by", "views")
		q["sort"] = "desc"
	case trend.CategoryVideos:
		q["limit"] = intParam(params, "limit", 10)
		if niche := stringParam(params, "niche", ""); niche != "" {
			q["niche"] = niche
		}
	}
	// trends and niches digests take no parameters.
	return q
}

func stringParam(params map[string]any, key, def string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

func intParam(params map[string]any, key string, def int) string {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return fmt.Sprintf("%d", n)
		case int64:
			return fmt.Sprintf("%d", n)
		case float64:
			return fmt.Sprintf("%d", int(n))
		}
	}
	return fmt.Sprintf("%d", def)
}

// summarizeBody shortens a response body for error messages.
func summarizeBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "empty body"
	}
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
