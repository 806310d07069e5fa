package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <topic>",
	Short: "Print a simplified explanation of a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(strings.Join(args, " "))
		if topic == "" {
			return fmt.Errorf("topic is empty")
		}

		svc, cleanup, err := newTutor(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		fmt.Fprintln(cmd.OutOrStdout(), svc.ExplainRequest(cmd.Context(), topic))
		return nil
	},
}
