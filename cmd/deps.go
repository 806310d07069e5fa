package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/llm"
	"github.com/abhisek/studybuddy/internal/store"
	"github.com/abhisek/studybuddy/internal/tutor"
)

// openStore opens the event database for a command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// newTutor builds the provider chain and tutor service. Unless --no-log
// is set, LLM calls are recorded in the event database; the returned
// cleanup closes it.
func newTutor(ctx context.Context, cmd *cobra.Command) (*tutor.Service, func(), error) {
	cleanup := func() {}

	var repo store.EventRepo
	if noLog, _ := cmd.Flags().GetBool("no-log"); !noLog {
		st, err := openStore(cmd)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { _ = st.Close() }
		repo = st.EventRepo()
	}

	provider, cfg, err := llm.NewProviderFromEnv(ctx, repo)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("LLM provider: %w", err)
	}

	tcfg := tutor.DefaultConfig()
	tcfg.Timeout = cfg.Timeout
	return tutor.NewService(provider, tcfg), cleanup, nil
}
