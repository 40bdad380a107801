package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	jobStopCommand.Flags().Bool("savepoint", false, "take a savepoint before stopping; also taken when the job is configured to start from one")
	jobCommand.AddCommand(jobStopCommand)
}

var jobStopCommand = &cobra.Command{
	Use:   "stop",
	Short: "Stop running jobs",
	Long:  "This command stops the selected jobs. Jobs that are already stopped are reported and skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectorFromFlags()
		if err != nil {
			return err
		}

		savepoint, _ := cmd.Flags().GetBool("savepoint")

		manager, err := newManager()
		if err != nil {
			return err
		}

		results, err := manager.StopJobs(sel, savepoint)
		if err != nil {
			return err
		}
		return printJSON(results)
	},
}
