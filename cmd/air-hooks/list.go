package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gykk16/air-claudecode/pkg/agents"
	"github.com/gykk16/air-claudecode/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the subagent descriptors in this repository",
	Long:  `List every subagent descriptor the SessionStart hook would announce, with its name, model and source file.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		dir, err := agents.ResolveDir(viper.GetString("project_dir"))
		if err != nil {
			presenter.Error(err, "Failed to resolve the agents directory")
			os.Exit(1)
		}

		descriptors, err := agents.NewScanner(dir).Scan(ctx)
		if err != nil {
			presenter.Error(err, "Failed to scan agent descriptors")
			os.Exit(1)
		}

		catalog := agents.BuildCatalog(descriptors)
		if len(catalog) == 0 {
			presenter.Info(fmt.Sprintf("No subagent descriptors found in %s", dir))
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tMODEL\tDESCRIPTION\tFILE")
		fmt.Fprintln(tw, "----\t-----\t-----------\t----")

		for _, m := range catalog {
			description := m.Description
			if len(description) > 60 {
				description = description[:57] + "..."
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Name, m.Model, description, m.Path)
		}
		tw.Flush()
	},
}
