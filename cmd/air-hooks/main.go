package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gykk16/air-claudecode/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "air-hooks",
	Short: "Claude Code hooks for the air-claudecode configuration repo",
	Long: `air-hooks implements the executable hooks for this configuration
repository. Running it with no subcommand behaves as the SessionStart hook:
it drains stdin, scans the agents directory for subagent descriptors and
writes a single JSON result line to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		sessionStartCmd.Run(cmd, args)
	},
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			fmt.Fprintf(os.Stderr, "invalid log level: %s\n", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().String("project-dir", "", "project root containing the agents directory (defaults to $CLAUDE_PROJECT_DIR, then the binary's parent directory)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	viper.BindPFlag("project_dir", rootCmd.PersistentFlags().Lookup("project-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindEnv("project_dir", "CLAUDE_PROJECT_DIR")

	rootCmd.AddCommand(sessionStartCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
