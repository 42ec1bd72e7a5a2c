package limiter

import (
	"fmt"
	"net/http"

	"github.com/m-zajac/profilestats/internal/app"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// limitedHTTPDoer wraps HTTPDoer and allows Dos with maximum rate limit.
type limitedHTTPDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewHTTPDoer creates LimitedHTTPDoer instance.
// maxRate - maximum number of Dos per second. Zero or less disables limiting.
func NewHTTPDoer(doer HTTPDoer, maxRate float64) HTTPDoer {
	limit := rate.Inf
	if maxRate > 0 {
		limit = rate.Limit(maxRate)
	}

	return &limitedHTTPDoer{
		doer:    doer,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Do executes http request. If limit is exceeded, blocks until call rate is within limit.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		return nil, app.RateLimitError(fmt.Sprintf("waiting for httpDoer limiter: %v", err))
	}

	return d.doer.Do(r)
}
