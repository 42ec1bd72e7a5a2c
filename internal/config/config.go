// Package config loads jobs configuration from environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	// Embedded zone database for PROFILE_TIMEZONE lookups.
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of configuration environment variables.
const Prefix = "PROFILE"

// Config is the container for jobs configuration
type Config struct {
	// GithubToken - auth token for github api
	GithubToken string `envconfig:"GITHUB_TOKEN" required:"true"`

	// Owner - login of the profile owner
	Owner string `envconfig:"GITHUB_REPOSITORY_OWNER" required:"true"`

	// GithubAPIAddress - address for github api with protocol
	GithubAPIAddress string `split_words:"true" default:"https://api.github.com"`

	// GithubAPIRateLimit - max frequency for github api calls, 0 means unlimited
	GithubAPIRateLimit float64 `split_words:"true" default:"5"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `split_words:"true" default:"100"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `split_words:"true" default:"10m"`

	// Timeout - timeout for a single job run
	Timeout time.Duration `default:"2m"`

	// Timezone - location used to determine the current day for streaks
	Timezone string `default:"UTC"`

	// LogLevel - logrus level name
	LogLevel string `split_words:"true" default:"info"`

	// LogJSON - use json log formatter
	LogJSON bool `split_words:"true" default:"false"`

	// ActivityCount - number of events listed in README recent activity section
	ActivityCount int `split_words:"true" default:"5"`

	// ProfileViews - optional profile views badge message, badge is skipped when empty
	ProfileViews string `envconfig:"PROFILE_VIEWS" default:""`

	// Output paths.
	StreakOutput        string `split_words:"true" default:"assets/images/streak-stats.svg"`
	ContributionOutput  string `split_words:"true" default:"assets/images/contribution-stats.svg"`
	LanguagesOutput     string `split_words:"true" default:"assets/images/languages.svg"`
	LanguagesJSONOutput string `envconfig:"LANGUAGES_JSON_OUTPUT" default:"assets/language-stats.json"`
	ActivityOutput      string `split_words:"true" default:"assets/images/activity-graph.svg"`
	BadgesJSONOutput    string `envconfig:"BADGES_JSON_OUTPUT" default:".github/badges/badges.json"`
	BadgesMDOutput      string `envconfig:"BADGES_MD_OUTPUT" default:".github/badges/badges.md"`
	ReadmePath          string `split_words:"true" default:"README.md"`
}

// Load reads configuration from environment.
// Variables from envFiles are loaded first without overriding already set ones, missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading env file %s: %w", f, err)
		}
	}

	var conf Config
	if err := envconfig.Process(Prefix, &conf); err != nil {
		return Config{}, fmt.Errorf("processing env: %w", err)
	}

	if _, err := conf.Location(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

// Location returns configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
