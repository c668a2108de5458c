package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/session"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

func main() {
	_ = godotenv.Load()
	setupLogging("warn")

	// Ctrl-C cancels the session, even while it waits for a line.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("wordle exited")
	}
}

func newRootCmd() *cobra.Command {
	cfg, envErr := configFromEnv()

	cmd := &cobra.Command{
		Use:           "wordle [wordsfile]",
		Short:         "Guess the five-letter word in six tries",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if len(args) == 1 {
				cfg.WordsSource = args[0]
			}
			setupLogging(cfg.LogLevel)
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for secret selection (0 = random)")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	return cmd
}

func run(ctx context.Context, cfg Config) error {
	catalog, err := words.Open(cfg.WordsSource)
	if err != nil {
		return err
	}
	seed := cfg.resolveSeed()
	log.Debug().Int64("seed", seed).Int("words", catalog.Len()).Msg("starting wordle")

	s := session.New(session.Config{
		Catalog: catalog,
		Rand:    rand.New(rand.NewSource(seed)),
		In:      os.Stdin,
		Out:     colorable.NewColorableStdout(),
	})
	return s.Run(ctx)
}

// setupLogging points the global logger at stderr with the given level.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
