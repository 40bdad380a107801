package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	addOverrideFlags(jobStartCommand)
	jobCommand.AddCommand(jobStartCommand)
}

var jobStartCommand = &cobra.Command{
	Use:   "start",
	Short: "Start stopped jobs",
	Long: "This command applies the given overrides to the selected jobs and starts them. " +
		"Jobs that are not stopped are reported and skipped. When the API times out on a " +
		"slow-starting job, the job is polled until it is running.",
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

		results, err := manager.StartJobs(sel, ov)
		if err != nil {
			return err
		}
		return printJSON(results)
	},
}
