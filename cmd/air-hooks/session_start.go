package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gykk16/air-claudecode/pkg/hook"
)

var sessionStartCmd = &cobra.Command{
	Use:   "session-start",
	Short: "Emit the subagent catalog for a new Claude Code session",
	Long: `Run the SessionStart hook: consume the host payload from stdin, scan
the agents directory for subagent descriptors and write one JSON result line
to stdout. The hook never fails; any error downgrades the output to the bare
{"continue": true} signal.`,
	Run: func(cmd *cobra.Command, _ []string) {
		hook.SessionStart(cmd.Context(), os.Stdin, os.Stdout, viper.GetString("project_dir"))
	},
}
