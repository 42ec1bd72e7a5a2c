package job

import (
	"context"
	"os"

	"github.com/m-zajac/profilestats/internal/config"
	"github.com/sirupsen/logrus"
)

// Func is a single job.
type Func func(ctx context.Context, env *Env) error

// Main loads configuration, runs fn and exits the process.
// Exit status is 1 when anything fails.
func Main(name string, fn Func) {
	l := logrus.New()

	conf, err := config.Load(".env")
	if err != nil {
		l.Fatalf("couldn't load config: %v", err)
	}
	l, err = NewLogger(conf)
	if err != nil {
		logrus.Fatalf("couldn't create logger: %v", err)
	}
	env, err := NewEnv(conf, l)
	if err != nil {
		l.Fatalf("couldn't create job env: %v", err)
	}

	if err := Run(context.Background(), name, fn, env); err != nil {
		os.Exit(1)
	}
}

// Run executes fn with configured timeout and logs the outcome.
func Run(ctx context.Context, name string, fn Func, env *Env) error {
	if env.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, env.Config.Timeout)
		defer cancel()
	}

	log := env.Log.WithField("job", name)
	start := env.Now()
	if err := fn(ctx, env); err != nil {
		log.WithError(err).Error("job failed")
		return err
	}
	log.WithField("took", env.Now().Sub(start).String()).Info("job done")

	return nil
}
