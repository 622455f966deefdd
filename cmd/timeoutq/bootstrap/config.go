package bootstrap

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	DefaultTTL time.Duration `env:"TIMEOUTQ_DEFAULT_TTL" envDefault:"500ms"`
	PullAfter  time.Duration `env:"TIMEOUTQ_PULL_AFTER" envDefault:"200ms"`
	RunFor     time.Duration `env:"TIMEOUTQ_RUN_FOR" envDefault:"1s"`
	LogLevel   string        `env:"TIMEOUTQ_LOG_LEVEL" envDefault:"info"`
	LogOutput  string        `env:"TIMEOUTQ_LOG_OUTPUT" envDefault:"console"`
}

// LoadConfig reads the environment first, command line flags given in args
// take precedence over it.
func LoadConfig(args []string) (Config, error) {
	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("timeoutq", flag.ContinueOnError)
	fs.DurationVar(
		&cfg.DefaultTTL, "ttl", cfg.DefaultTTL,
		"Default time to live of pushed values, negative values never expire",
	)
	fs.DurationVar(
		&cfg.PullAfter, "pull-after", cfg.PullAfter,
		"How long to wait before retrieving the first value",
	)
	fs.DurationVar(
		&cfg.RunFor, "run-for", cfg.RunFor,
		"How long the demo keeps running before it drains the queue and exits",
	)
	fs.StringVar(
		&cfg.LogLevel, "log.level", cfg.LogLevel,
		"Only log messages with the given severity or above.\n"+
			"For example: debug, info, warn, error and other levels supported by zerolog",
	)
	fs.StringVar(
		&cfg.LogOutput, "log.output", cfg.LogOutput,
		"Output format of log messages. Available options: console, stdout, json",
	)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
