package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/app"
)

const debugLogFile = "studybuddy-debug.log"

// runApp builds the tutor and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if os.Getenv("STUDYBUDDY_DEBUG") != "" {
		f, err := tea.LogToFile(debugLogFile, "studybuddy")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// stderr belongs to the TUI.
		log.SetOutput(io.Discard)
	}

	svc, cleanup, err := newTutor(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Tutor:      svc,
		ModelID:    svc.ModelID(),
		ShowSplash: !noSplash,
	})
}
