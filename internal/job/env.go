// Package job contains profile generation jobs and the plumbing shared by their binaries.
package job

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/m-zajac/profilestats/internal/adapter/github"
	"github.com/m-zajac/profilestats/internal/app"
	"github.com/m-zajac/profilestats/internal/config"
	"github.com/m-zajac/profilestats/internal/limiter"
	"github.com/m-zajac/profilestats/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Env holds dependencies of a job run.
type Env struct {
	Config  config.Config
	Log     logrus.FieldLogger
	Service *app.Service
	Writer  *output.Writer
	Now     func() time.Time
}

// NewLogger creates logger configured by conf.
func NewLogger(conf config.Config) (*logrus.Logger, error) {
	l := logrus.New()
	l.Out = os.Stderr

	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	l.Level = level

	if conf.LogJSON {
		l.Formatter = &logrus.JSONFormatter{}
	}

	return l, nil
}

// NewEnv wires production dependencies: rate limited github client with in-process cache,
// service and writer over the OS filesystem.
func NewEnv(conf config.Config, l *logrus.Logger) (*Env, error) {
	log := l.WithField("run", uuid.NewString())

	loc, err := conf.Location()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	githubClient, err := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubToken,
	)
	if err != nil {
		return nil, fmt.Errorf("couldn't create github client: %w", err)
	}
	githubCachedClient, err := github.NewCachedClient(
		githubClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("couldn't create github client cache: %w", err)
	}

	return &Env{
		Config:  conf,
		Log:     log,
		Service: app.NewService(githubCachedClient, loc),
		Writer:  output.NewWriter(afero.NewOsFs(), log.WithField("component", "writer")),
		Now:     time.Now,
	}, nil
}
