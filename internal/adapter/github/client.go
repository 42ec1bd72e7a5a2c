package github

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
	"strings"
	"time"

	gh "github.com/google/go-github/v59/github"
	"github.com/m-zajac/profilestats/internal/app"
	"golang.org/x/oauth2"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns github profile data.
// Contribution data is read from graphql api, events from rest api.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer       HTTPDoer
	graphQLURL string
	authToken  string
	rest       *gh.Client

	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// address is the api root, e.g. https://api.github.com. authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string) (*Client, error) {
	address = strings.TrimSuffix(address, "/")
	baseURL, err := url.Parse(address + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	var transport http.RoundTripper = doerTransport{doer: doer}
	if authToken != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: authToken}),
			Base:   transport,
		}
	}
	rest := gh.NewClient(&http.Client{Transport: transport})
	rest.BaseURL = baseURL

	return &Client{
		doer:       doer,
		graphQLURL: address + "/graphql",
		authToken:  authToken,
		rest:       rest,

		responseMaxSize: 1024 * 1024 * 10,
	}, nil
}

// ContributionCalendar returns contribution calendar for the last year.
func (c *Client) ContributionCalendar(ctx context.Context, login string) (app.ContributionCalendar, error) {
	if login == "" {
		return app.ContributionCalendar{}, app.InvalidRequestError("login cannot be empty")
	}

	var resp calendarResponse
	if err := c.query(ctx, calendarQuery, map[string]interface{}{"login": login}, &resp); err != nil {
		return app.ContributionCalendar{}, err
	}

	return resp.ToCalendar()
}

// ContributionSummary returns contribution totals in given time window and account counters.
func (c *Client) ContributionSummary(ctx context.Context, login string, from, to time.Time) (app.ContributionSummary, error) {
	if login == "" {
		return app.ContributionSummary{}, app.InvalidRequestError("login cannot be empty")
	}
	if to.Before(from) {
		return app.ContributionSummary{}, app.InvalidRequestError("time window end is before its start")
	}

	vars := map[string]interface{}{
		"login": login,
		"from":  from.UTC().Format(time.RFC3339),
		"to":    to.UTC().Format(time.RFC3339),
	}
	var resp summaryResponse
	if err := c.query(ctx, summaryQuery, vars, &resp); err != nil {
		return app.ContributionSummary{}, err
	}

	return resp.ToSummary()
}

// RepositoryLanguages returns owned, non-fork repositories with their languages.
func (c *Client) RepositoryLanguages(ctx context.Context, login string) ([]app.Repository, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}

	var resp languagesResponse
	if err := c.query(ctx, languagesQuery, map[string]interface{}{"login": login}, &resp); err != nil {
		return nil, err
	}

	return resp.ToRepositories()
}

// RecentEvents returns most recent public events performed by user.
func (c *Client) RecentEvents(ctx context.Context, login string, count int) ([]app.Event, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	events, _, err := c.rest.Activity.ListEventsPerformedByUser(ctx, login, true, &gh.ListOptions{PerPage: count})
	if err != nil {
		var rle *gh.RateLimitError
		if errors.As(err, &rle) {
			return nil, app.RateLimitError("rate limit exceeded: " + rle.Message)
		}
		return nil, fmt.Errorf("listing user events: %w", err)
	}

	result := make([]app.Event, 0, len(events))
	for _, e := range events {
		ev := app.Event{
			Type: e.GetType(),
			Repo: e.GetRepo().GetName(),
		}
		if e.CreatedAt != nil {
			ev.CreatedAt = e.CreatedAt.Time
		}
		if e.RawPayload != nil {
			var p eventPayload
			if err := json.Unmarshal(*e.RawPayload, &p); err != nil {
				return nil, fmt.Errorf("unmarshalling %s payload: %w", ev.Type, err)
			}
			ev.Action = p.Action
			ev.RefType = p.RefType
			ev.Commits = len(p.Commits)
		}
		result = append(result, ev)
	}

	return result, nil
}

func (c *Client) query(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	reqBody, err := json.Marshal(graphQLRequest{
		Query:     query,
		Variables: vars,
	})
	if err != nil {
		return fmt.Errorf("marshalling graphql request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.graphQLURL, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := c.makeRequest(ctx, httpReq, c.responseMaxSize)
	if err != nil {
		return fmt.Errorf("making http request: %w", err)
	}

	var resp graphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("unmarshalling response: %w", err)
	}
	if err := resp.Err(); err != nil {
		return err
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return &app.ShapeError{Path: "data"}
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("unmarshalling response data: %w", err)
	}

	return nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, error) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "bearer "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		if c.checkRateLimitExceeded(resp.Header) {
			return nil, app.RateLimitError("rate limit exceeded")
		}
		return nil, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	// Read one byte more than allowed to detect oversized responses.
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > maxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBytes)
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

// doerTransport lets go-github use HTTPDoer as its transport.
type doerTransport struct {
	doer HTTPDoer
}

func (t doerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.doer.Do(r)
}
