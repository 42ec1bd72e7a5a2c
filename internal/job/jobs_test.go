package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/profilestats/internal/app"
	"github.com/m-zajac/profilestats/internal/app/mock"
	"github.com/m-zajac/profilestats/internal/config"
	"github.com/m-zajac/profilestats/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow  = time.Date(2024, time.January, 4, 12, 0, 0, 0, time.UTC)
	yearFrom = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearTo   = time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
)

func testConfig() config.Config {
	return config.Config{
		Owner:               "octocat",
		Timeout:             time.Minute,
		ActivityCount:       5,
		StreakOutput:        "assets/images/streak-stats.svg",
		ContributionOutput:  "assets/images/contribution-stats.svg",
		LanguagesOutput:     "assets/images/languages.svg",
		LanguagesJSONOutput: "assets/language-stats.json",
		ActivityOutput:      "assets/images/activity-graph.svg",
		BadgesJSONOutput:    ".github/badges/badges.json",
		BadgesMDOutput:      ".github/badges/badges.md",
		ReadmePath:          "README.md",
	}
}

func newTestEnv(client app.GithubClient) (*Env, afero.Fs, *test.Hook) {
	l, hook := test.NewNullLogger()
	fs := afero.NewMemMapFs()
	clock := func() time.Time { return testNow }

	return &Env{
		Config:  testConfig(),
		Log:     l,
		Service: app.NewService(client, time.UTC).WithClock(clock),
		Writer:  output.NewWriter(fs, l),
		Now:     clock,
	}, fs, hook
}

func testCalendar() app.ContributionCalendar {
	day := func(d, count int) app.ContributionDay {
		date := time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
		return app.ContributionDay{
			Date:    date,
			Weekday: int(date.Weekday()),
			Count:   count,
		}
	}

	return app.ContributionCalendar{
		TotalContributions: 10,
		Weeks: [][]app.ContributionDay{
			{day(1, 3), day(2, 0), day(3, 5), day(4, 2)},
		},
	}
}

func testSummary() app.ContributionSummary {
	return app.ContributionSummary{
		TotalContributions: 1200,
		Commits:            150,
		PullRequests:       4,
		Repositories:       12,
		Stars:              30,
		Followers:          7,
		CreatedAt:          time.Date(2023, time.January, 4, 0, 0, 0, 0, time.UTC),
	}
}

func testRepos() []app.Repository {
	return []app.Repository{
		{Name: "a", Languages: []app.LanguageEdge{{Name: "Go", Color: "#00ADD8", Size: 300}}},
		{Name: "b", Languages: []app.LanguageEdge{{Name: "Shell", Size: 100}}},
	}
}

func expectProfileStats(c *mock.MockGithubClient) {
	c.EXPECT().ContributionSummary(gomock.Any(), "octocat", yearFrom, yearTo).Return(testSummary(), nil)
	c.EXPECT().ContributionCalendar(gomock.Any(), "octocat").Return(testCalendar(), nil)
	c.EXPECT().RepositoryLanguages(gomock.Any(), "octocat").Return(testRepos(), nil)
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(b)
}

func TestStreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().ContributionCalendar(gomock.Any(), "octocat").Return(testCalendar(), nil)
	env, fs, _ := newTestEnv(client)

	require.NoError(t, Streak(context.Background(), env))

	svg := readFile(t, fs, "assets/images/streak-stats.svg")
	assert.Contains(t, svg, "Last contribution: Jan 4, 2024")
	assert.Contains(t, svg, `class="stat-value">2</text>`)
	assert.Contains(t, svg, `class="stat-value">10</text>`)
}

func TestStreakClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().
		ContributionCalendar(gomock.Any(), "octocat").
		Return(app.ContributionCalendar{}, app.RateLimitError("limit exceeded"))
	env, fs, _ := newTestEnv(client)

	err := Streak(context.Background(), env)
	require.Error(t, err)
	assert.True(t, app.IsRateLimitError(err))

	exists, err := afero.Exists(fs, "assets/images/streak-stats.svg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestContribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().ContributionSummary(gomock.Any(), "octocat", yearFrom, yearTo).Return(testSummary(), nil)
	env, fs, _ := newTestEnv(client)

	require.NoError(t, Contribution(context.Background(), env))

	svg := readFile(t, fs, "assets/images/contribution-stats.svg")
	assert.Contains(t, svg, "2024 GitHub Activity")
	assert.Contains(t, svg, `class="stat">1,200</text>`)
}

func TestLanguages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().RepositoryLanguages(gomock.Any(), "octocat").Return(testRepos(), nil)
	env, fs, _ := newTestEnv(client)

	require.NoError(t, Languages(context.Background(), env))

	svg := readFile(t, fs, "assets/images/languages.svg")
	assert.Contains(t, svg, `class="lang-name">Go</text>`)
	assert.Contains(t, svg, `>75.0%</text>`)
	assert.Contains(t, svg, `fill="#858585"`)

	js := readFile(t, fs, "assets/language-stats.json")
	assert.JSONEq(t, `{
		"languages": [
			{"name": "Go", "percentage": "75.00", "color": "#00ADD8"},
			{"name": "Shell", "percentage": "25.00", "color": "#858585"}
		],
		"generated": "2024-01-04T12:00:00Z"
	}`, js)
}

func TestActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().ContributionCalendar(gomock.Any(), "octocat").Return(testCalendar(), nil)
	env, fs, _ := newTestEnv(client)

	require.NoError(t, Activity(context.Background(), env))

	svg := readFile(t, fs, "assets/images/activity-graph.svg")
	assert.Contains(t, svg, "1-Week Activity Heatmap")
	assert.Contains(t, svg, "<title>2024-01-03: 5 contributions</title>")
}

func TestBadges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	expectProfileStats(client)
	env, fs, _ := newTestEnv(client)

	require.NoError(t, Badges(context.Background(), env))

	js := readFile(t, fs, ".github/badges/badges.json")
	assert.Contains(t, js, `"name": "stars"`)
	assert.Contains(t, js, `"url": "https://img.shields.io/badge/Stars-30-orange?style=flat-square"`)
	assert.Contains(t, js, `"name": "milestone_100_commits"`)

	md := readFile(t, fs, ".github/badges/badges.md")
	assert.Contains(t, md, "<!-- Badges Start -->\n<div align=\"center\">")
	assert.Contains(t, md, "![Total Stars](https://img.shields.io/badge/Stars-30-orange?style=flat-square)")
	assert.Contains(t, md, "<!-- Badges End -->\n")
}

const testReadme = `# Hi there

<!-- Badges Start -->
old badges
<!-- Badges End -->

## Stats
<!-- Stats Start -->
old stats
<!-- Stats End -->

## Recent activity
<!-- Recent Activity Start -->
old activity
<!-- Recent Activity End -->

*Last updated: never*
`

func TestReadme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	expectProfileStats(client)
	client.EXPECT().RecentEvents(gomock.Any(), "octocat", 5).Return([]app.Event{
		{Type: "PushEvent", Repo: "octocat/hello", Commits: 2},
		{Type: "WatchEvent", Repo: "golang/go"},
	}, nil)
	env, fs, _ := newTestEnv(client)
	require.NoError(t, afero.WriteFile(fs, "README.md", []byte(testReadme), 0644))

	require.NoError(t, Readme(context.Background(), env))

	got := readFile(t, fs, "README.md")
	assert.NotContains(t, got, "old badges")
	assert.NotContains(t, got, "old stats")
	assert.NotContains(t, got, "old activity")
	assert.Contains(t, got, "<!-- Badges Start -->\n<div align=\"center\">")
	assert.Contains(t, got, "| 📅 Account Age | 365 days |")
	assert.Contains(t, got, "| 🔥 Current Streak | 2 days |")
	assert.Contains(t, got, "<!-- Recent Activity Start -->\n"+
		"1. 🔨 Pushed 2 commits to octocat/hello\n"+
		"2. ⭐ Starred golang/go\n"+
		"<!-- Recent Activity End -->")
	assert.Contains(t, got, "*Last updated: Thursday, January 4, 2024 at 7:00 AM ET*")
}

func TestReadmeEventsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	expectProfileStats(client)
	client.EXPECT().RecentEvents(gomock.Any(), "octocat", 5).Return(nil, errors.New("boom"))
	env, fs, hook := newTestEnv(client)
	require.NoError(t, afero.WriteFile(fs, "README.md", []byte(testReadme), 0644))

	require.NoError(t, Readme(context.Background(), env))

	got := readFile(t, fs, "README.md")
	assert.Contains(t, got, "old activity")
	assert.NotContains(t, got, "old stats")

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "skipping recent activity section" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestReadmeMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env, _, _ := newTestEnv(mock.NewMockGithubClient(ctrl))

	assert.Error(t, Readme(context.Background(), env))
}

func TestRun(t *testing.T) {
	env, _, hook := newTestEnv(nil)

	var deadline bool
	err := Run(context.Background(), "ok", func(ctx context.Context, _ *Env) error {
		_, deadline = ctx.Deadline()
		return nil
	}, env)
	require.NoError(t, err)
	assert.True(t, deadline)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "ok", hook.LastEntry().Data["job"])

	jobErr := errors.New("boom")
	err = Run(context.Background(), "failing", func(context.Context, *Env) error {
		return jobErr
	}, env)
	assert.Equal(t, jobErr, err)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestAllContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().
		ContributionCalendar(gomock.Any(), "octocat").
		Return(app.ContributionCalendar{}, errors.New("boom")).
		AnyTimes()
	client.EXPECT().ContributionSummary(gomock.Any(), "octocat", yearFrom, yearTo).Return(testSummary(), nil).AnyTimes()
	client.EXPECT().RepositoryLanguages(gomock.Any(), "octocat").Return(testRepos(), nil).AnyTimes()
	env, fs, _ := newTestEnv(client)

	err := All(context.Background(), env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "streakstats")
	assert.Contains(t, err.Error(), "activitygraph")
	assert.Contains(t, err.Error(), "badges")
	assert.Contains(t, err.Error(), "readmeupdater")

	for _, p := range []string{"assets/images/contribution-stats.svg", "assets/images/languages.svg", "assets/language-stats.json"} {
		exists, err := afero.Exists(fs, p)
		require.NoError(t, err)
		assert.True(t, exists, p)
	}
}

func TestNewLogger(t *testing.T) {
	conf := testConfig()
	conf.LogLevel = "debug"
	conf.LogJSON = true

	l, err := NewLogger(conf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.Level)
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	conf.LogLevel = "loud"
	_, err = NewLogger(conf)
	assert.Error(t, err)
}

func TestNewEnv(t *testing.T) {
	conf := testConfig()
	conf.Timezone = "UTC"
	conf.GithubAPIAddress = "https://api.github.com"
	conf.GithubClientCacheSize = 10
	conf.GithubClientCacheTTL = time.Minute
	l, _ := test.NewNullLogger()

	env, err := NewEnv(conf, l)
	require.NoError(t, err)
	assert.NotNil(t, env.Service)
	assert.NotNil(t, env.Writer)

	conf.GithubClientCacheSize = 0
	_, err = NewEnv(conf, l)
	assert.Error(t, err)
}
