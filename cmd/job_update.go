package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	addOverrideFlags(jobUpdateCommand)
	jobCommand.AddCommand(jobUpdateCommand)
}

var jobUpdateCommand = &cobra.Command{
	Use:   "update",
	Short: "Update stopped jobs",
	Long:  "This command updates the configuration and SQL of the selected jobs. Jobs that are not stopped are reported and skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectorFromFlags()
		if err != nil {
			return err
		}

		ov, err := overridesFromFlags(cmd)
		if err != nil {
			return err
		}

		manager, err := newManager()
		if err != nil {
			return err
		}

		results, err := manager.UpdateJobs(sel, ov)
		if err != nil {
			return err
		}
		return printJSON(results)
	},
}
