package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/symonk/timeoutq"
	"github.com/symonk/timeoutq/cmd/timeoutq/bootstrap"
	"github.com/symonk/timeoutq/internal/contract"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.Logging(cfg, os.Stdout)
	if err != nil {
		panic(err)
	}
	log.Logger = logger

	start := time.Now()
	queue := timeoutq.New[string](
		timeoutq.WithDefaultTTL(cfg.DefaultTTL),
		timeoutq.WithLogger(logger.With().Str("component", "queue").Logger()),
		timeoutq.OnExpired(func(v string) {
			log.Info().Dur("at", time.Since(start)).Str("value", v).Msg("Expired")
		}),
	)
	defer queue.Stop()

	replay(ctx, queue, cfg, start)
	drain(queue, log.Logger)
}

// replay pushes two values that share the default time to live and pulls
// one of them before it runs out.
func replay(ctx context.Context, queue *timeoutq.Queue[string], cfg bootstrap.Config, start time.Time) {
	queue.Push("Bob")
	queue.Push("Jan")
	log.Info().Int("length", queue.Len()).Msg("Pushed")

	pull := time.NewTimer(cfg.PullAfter)
	defer pull.Stop()
	done := time.NewTimer(cfg.RunFor)
	defer done.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Exiting due to shutdown signal")
			return
		case <-pull.C:
			if v, ok := queue.Next(); ok {
				log.Info().Dur("at", time.Since(start)).Str("value", v).Msg("Got")
			}
		case <-done.C:
			return
		}
	}
}

// drain empties whatever is left once the demo is over.
func drain(consumer contract.StoppableConsumer[string], logger zerolog.Logger) {
	consumer.Stop()
	for {
		v, ok := consumer.Next()
		if !ok {
			break
		}
		logger.Info().Str("value", v).Msg("Drained")
	}
	logger.Info().Int("length", consumer.Len()).Msg("Done")
}
