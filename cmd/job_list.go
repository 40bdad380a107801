package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	jobCommand.AddCommand(jobListCommand)
}

var jobListCommand = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	Long:  "This command lists the selected jobs of a project.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectorFromFlags()
		if err != nil {
			return err
		}

		manager, err := newManager()
		if err != nil {
			return err
		}

		jobs, err := manager.ListJobs(sel)
		if err != nil {
			return err
		}
		return printJSON(jobs)
	},
}
