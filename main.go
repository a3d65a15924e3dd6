package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Shahidulislam34/mucsu-election-client/api"
	"github.com/Shahidulislam34/mucsu-election-client/cliparse"
	"github.com/Shahidulislam34/mucsu-election-client/credstore"
)

var cfg cliparse.Config

var rootCmd = &cobra.Command{
	Use:   "mucsu-vote",
	Short: "MUCSU election client",
	Long: `Command line client for the MUCSU university election backend.

Voters register, log in, inspect the ballot, cast votes and review
results; admins maintain the candidate roster. All state lives on the
backend - this client only holds the bearer credential between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return cfg.Normalize()
	},
}

func init() {
	cfg = cliparse.FromEnv()

	rootCmd.PersistentFlags().StringVarP(&cfg.BaseURL, "base-url", "b", cfg.BaseURL, "Backend base URL")
	rootCmd.PersistentFlags().DurationVarP(&cfg.Timeout, "timeout", "t", cfg.Timeout, "Per-request timeout (0 = transport default)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorePath, "store", cfg.StorePath, "Credential store path")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd, verifyCmd)
	rootCmd.AddCommand(ballotCmd, voteCmd)
	rootCmd.AddCommand(resultsCmd, historyCmd)
	rootCmd.AddCommand(candidateCmd)
}

// session bundles the per-invocation dependencies: configuration, the
// credential store and the api client built on both.
type session struct {
	cfg    cliparse.Config
	store  credstore.Store
	client *api.Client
}

func newSession() *session {
	var store credstore.Store
	if cfg.StorePath != "" {
		s, err := credstore.Open(cfg.StorePath)
		if err != nil {
			// A broken store degrades to a logged-out session, never a crash.
			slog.Warn("credential store unavailable, continuing without persistence", "error", err)
			store = credstore.NewMemory()
		} else {
			store = s
		}
	} else {
		store = credstore.NewMemory()
	}

	return &session{cfg: cfg, store: store, client: api.New(cfg, store)}
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		slog.Debug("credential store close failed", "error", err)
	}
}

func main() {
	// Ctrl-C cancels whatever request is in flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
