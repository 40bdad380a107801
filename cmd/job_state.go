package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	jobStateCommand.Flags().BoolP("json", "j", false, "print job states as JSON")
	jobCommand.AddCommand(jobStateCommand)
}

var jobStateCommand = &cobra.Command{
	Use:   "state",
	Short: "Show job states",
	Long:  "This command shows the lifecycle state of the selected jobs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectorFromFlags()
		if err != nil {
			return err
		}

		manager, err := newManager()
		if err != nil {
			return err
		}

		states, err := manager.ListJobsState(sel)
		if err != nil {
			return err
		}

		if printJson, _ := cmd.Flags().GetBool("json"); printJson {
			return printJSON(states)
		}

		for _, info := range states {
			fmt.Println(jobStateLine(info))
		}
		return nil
	},
}
