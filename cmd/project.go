package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(projectCommand)
	projectCommand.AddCommand(projectListCommand)
}

var projectCommand = &cobra.Command{
	Use:   "project",
	Short: "Work with SSB projects",
}

var projectListCommand = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long:  "This command lists all projects visible to the configured user.",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		projects, err := manager.ListProjects()
		if err != nil {
			return err
		}
		return printJSON(projects)
	},
}
