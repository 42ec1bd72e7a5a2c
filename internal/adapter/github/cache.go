package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/profilestats/internal/app"
)

// CachedClient wraps github client with in-memory caching layer.
// It lets several jobs running in one process share query results.
// Events are never cached.
type CachedClient struct {
	client         app.GithubClient
	calendarCache  *lru.Cache
	summaryCache   *lru.Cache
	languagesCache *lru.Cache
	ttl            time.Duration
	now            func() time.Time
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	calendarCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for calendars: %w", err)
	}
	summaryCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for summaries: %w", err)
	}
	languagesCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for languages: %w", err)
	}

	return &CachedClient{
		client:         client,
		calendarCache:  calendarCache,
		summaryCache:   summaryCache,
		languagesCache: languagesCache,
		ttl:            ttl,
		now:            time.Now,
	}, nil
}

// ContributionCalendar returns contribution calendar for the last year.
func (c *CachedClient) ContributionCalendar(ctx context.Context, login string) (app.ContributionCalendar, error) {
	if v, ok := c.get(c.calendarCache, login); ok {
		return v.(app.ContributionCalendar), nil
	}

	calendar, err := c.client.ContributionCalendar(ctx, login)
	if err != nil {
		return calendar, err
	}
	c.add(c.calendarCache, login, calendar)

	return calendar, nil
}

// ContributionSummary returns contribution totals in given time window and account counters.
func (c *CachedClient) ContributionSummary(ctx context.Context, login string, from, to time.Time) (app.ContributionSummary, error) {
	key := c.summaryCacheKey(login, from, to)
	if v, ok := c.get(c.summaryCache, key); ok {
		return v.(app.ContributionSummary), nil
	}

	summary, err := c.client.ContributionSummary(ctx, login, from, to)
	if err != nil {
		return summary, err
	}
	c.add(c.summaryCache, key, summary)

	return summary, nil
}

// RepositoryLanguages returns owned, non-fork repositories with their languages.
func (c *CachedClient) RepositoryLanguages(ctx context.Context, login string) ([]app.Repository, error) {
	if v, ok := c.get(c.languagesCache, login); ok {
		return v.([]app.Repository), nil
	}

	repos, err := c.client.RepositoryLanguages(ctx, login)
	if err != nil {
		return repos, err
	}
	c.add(c.languagesCache, login, repos)

	return repos, nil
}

// RecentEvents returns most recent public events performed by user.
func (c *CachedClient) RecentEvents(ctx context.Context, login string, count int) ([]app.Event, error) {
	return c.client.RecentEvents(ctx, login, count)
}

func (c *CachedClient) get(cache *lru.Cache, key string) (interface{}, bool) {
	val, ok := cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := val.(cacheEntry)
	if !entry.created.Add(c.ttl).After(c.now()) {
		cache.Remove(key)
		return nil, false
	}

	return entry.data, true
}

func (c *CachedClient) add(cache *lru.Cache, key string, data interface{}) {
	cache.Add(key, cacheEntry{
		created: c.now(),
		data:    data,
	})
}

func (c *CachedClient) summaryCacheKey(login string, from, to time.Time) string {
	return login + "/" + from.UTC().Format(time.RFC3339) + "/" + to.UTC().Format(time.RFC3339)
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}
