package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest (or a pinned) release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().String("to", "", "Install this release tag instead of the latest (e.g. v0.3.0)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("to")
	out := cmd.OutOrStdout()

	ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))
	err := checker.Update(ctx, &selfupdate.UpdateInput{
		CurrentVersion: version,
		TargetVersion:  target,
	}, func(p selfupdate.UpdateProgress) {
		fmt.Fprintf(out, "[%s] %s\n", p.Stage, p.Message)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, selfupdate.ErrDevBuild):
		fmt.Fprintln(out, "This is a development build; install a release build to enable updates.")
		return nil
	case errors.Is(err, selfupdate.ErrAlreadyLatest):
		fmt.Fprintf(out, "studybuddy %s is the latest release.\n", version)
		return nil
	case os.IsPermission(err) || errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w\n\nThe binary's directory is not writable; retry with elevated permissions", err)
	}
	return fmt.Errorf("update: %w", err)
}
