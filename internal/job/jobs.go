package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-zajac/profilestats/internal/readme"
	"github.com/m-zajac/profilestats/internal/render"
	"github.com/sirupsen/logrus"
)

// Named lists every job in the order the all-in-one binary runs them.
// README goes last so it can pick up freshly generated badges.
var Named = []struct {
	Name string
	Func Func
}{
	{"streakstats", Streak},
	{"contributionstats", Contribution},
	{"languagestats", Languages},
	{"activitygraph", Activity},
	{"badges", Badges},
	{"readmeupdater", Readme},
}

// Streak generates streak stats card.
func Streak(ctx context.Context, env *Env) error {
	stats, err := env.Service.StreakStats(ctx, env.Config.Owner)
	if err != nil {
		return fmt.Errorf("fetching streak stats: %w", err)
	}
	svg, err := render.StreakSVG(stats)
	if err != nil {
		return err
	}

	env.Log.WithFields(logrus.Fields{
		"current": stats.CurrentStreak,
		"longest": stats.LongestStreak,
	}).Info("streak calculated")

	return env.Writer.Write(env.Config.StreakOutput, svg)
}

// Contribution generates yearly contribution stats card.
func Contribution(ctx context.Context, env *Env) error {
	summary, err := env.Service.ContributionStats(ctx, env.Config.Owner)
	if err != nil {
		return fmt.Errorf("fetching contribution stats: %w", err)
	}
	svg, err := render.ContributionSVG(summary)
	if err != nil {
		return err
	}

	return env.Writer.Write(env.Config.ContributionOutput, svg)
}

// Languages generates most used languages card and its json twin.
func Languages(ctx context.Context, env *Env) error {
	langs, err := env.Service.LanguageStats(ctx, env.Config.Owner)
	if err != nil {
		return fmt.Errorf("fetching language stats: %w", err)
	}
	svg, err := render.LanguagesSVG(langs)
	if err != nil {
		return err
	}
	data, err := render.LanguagesJSON(langs, env.Now())
	if err != nil {
		return err
	}

	if err := env.Writer.Write(env.Config.LanguagesOutput, svg); err != nil {
		return err
	}
	return env.Writer.Write(env.Config.LanguagesJSONOutput, data)
}

// Activity generates contribution heatmap of recent weeks.
func Activity(ctx context.Context, env *Env) error {
	weeks, err := env.Service.ActivityWeeks(ctx, env.Config.Owner)
	if err != nil {
		return fmt.Errorf("fetching activity: %w", err)
	}
	svg, err := render.ActivitySVG(weeks)
	if err != nil {
		return err
	}

	return env.Writer.Write(env.Config.ActivityOutput, svg)
}

// Badges generates badge list as json and markdown.
func Badges(ctx context.Context, env *Env) error {
	stats, err := env.Service.ProfileStats(ctx, env.Config.Owner)
	if err != nil {
		return fmt.Errorf("fetching profile stats: %w", err)
	}
	badges := render.ProfileBadges(stats, env.Config.ProfileViews)

	data, err := render.BadgesJSON(badges)
	if err != nil {
		return err
	}
	if err := env.Writer.Write(env.Config.BadgesJSONOutput, data); err != nil {
		return err
	}

	env.Log.WithField("count", len(badges)).Info("badges generated")

	return env.Writer.Write(env.Config.BadgesMDOutput, []byte(render.BadgesMarkdown(badges)+"\n"))
}

// Readme refreshes generated sections of the README.
// Missing section markers and a failed events fetch are logged and skipped.
func Readme(ctx context.Context, env *Env) error {
	conf := env.Config

	content, err := env.Writer.Read(conf.ReadmePath)
	if err != nil {
		return err
	}
	stats, err := env.Service.ProfileStats(ctx, conf.Owner)
	if err != nil {
		return fmt.Errorf("fetching profile stats: %w", err)
	}

	doc := readme.NewDocument(content, env.Log.WithField("component", "readme"))
	doc.UpdateSection(render.BadgesSection, render.BadgesBlock(render.ProfileBadges(stats, conf.ProfileViews)))
	doc.UpdateSection(readme.StatsSection, readme.FormatStats(stats, env.Now()))

	events, err := env.Service.RecentActivity(ctx, conf.Owner, conf.ActivityCount)
	if err != nil {
		env.Log.WithError(err).Warn("skipping recent activity section")
	} else {
		doc.UpdateSection(readme.ActivitySection, readme.FormatRecentActivity(events, conf.ActivityCount))
	}

	if _, err := doc.UpdateTimestamp(env.Now()); err != nil {
		return err
	}

	return env.Writer.Write(conf.ReadmePath, doc.Bytes())
}

// All runs every job in turn. A failing job doesn't stop the following ones.
func All(ctx context.Context, env *Env) error {
	var errs []error
	for _, j := range Named {
		if err := Run(ctx, j.Name, j.Func, env); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", j.Name, err))
		}
	}
	return errors.Join(errs...)
}
