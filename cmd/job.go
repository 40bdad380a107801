package cmd

import (
	"os"

	"github.com/aaraujo/ssbctl/pkg/ssb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	projectID   string
	projectName string
	jobIDs      []string
	jobNames    []string
	allJobs     bool
)

func init() {
	rootCmd.AddCommand(jobCommand)

	jobCommand.PersistentFlags().StringVar(&projectID, "project-id", "", "id of the project to work on")
	jobCommand.PersistentFlags().StringVar(&projectName, "project-name", "", "name of the project to work on; the first project with this name wins")
	jobCommand.PersistentFlags().StringArrayVar(&jobIDs, "job-id", nil, "id of a job to select; repeatable")
	jobCommand.PersistentFlags().StringArrayVar(&jobNames, "job-name", nil, "name of a job to select; repeatable")
	jobCommand.PersistentFlags().BoolVar(&allJobs, "all-jobs", false, "select all jobs of the project, ignoring --job-id and --job-name")
}

var jobCommand = &cobra.Command{
	Use:   "job",
	Short: "Work with SSB jobs",
	Long:  "These commands list, update, start and stop the jobs of a project.",
}

func selectorFromFlags() (ssb.Selector, error) {
	if (projectID == "") == (projectName == "") {
		return ssb.Selector{}, errors.New("exactly one of --project-id and --project-name must be set")
	}

	return ssb.Selector{
		ProjectID:   projectID,
		ProjectName: projectName,
		JobIDs:      jobIDs,
		JobNames:    jobNames,
		AllJobs:     allJobs,
	}, nil
}

func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().String("sql-file", "", "file with the SQL statement to set on the job")
	cmd.Flags().Bool("use-savepoint", false, "whether the job starts from its latest savepoint; left unchanged when the flag is not given")
	cmd.Flags().Bool("per-job", false, "set execution mode PER_JOB")
	cmd.Flags().Bool("session", false, "set execution mode SESSION")
	cmd.Flags().Bool("batch", false, "set runtime mode BATCH")
	cmd.Flags().Bool("streaming", false, "set runtime mode STREAMING")
}

func overridesFromFlags(cmd *cobra.Command) (ssb.Overrides, error) {
	ov := ssb.Overrides{}

	ov.PerJob, _ = cmd.Flags().GetBool("per-job")
	ov.Session, _ = cmd.Flags().GetBool("session")
	ov.Batch, _ = cmd.Flags().GetBool("batch")
	ov.Streaming, _ = cmd.Flags().GetBool("streaming")

	if ov.PerJob && ov.Session {
		return ov, errors.New("--per-job and --session are mutually exclusive")
	}
	if ov.Batch && ov.Streaming {
		return ov, errors.New("--batch and --streaming are mutually exclusive")
	}

	if cmd.Flags().Changed("use-savepoint") {
		useSavepoint, _ := cmd.Flags().GetBool("use-savepoint")
		ov.UseSavepoint = &useSavepoint
	}

	if sqlFile, _ := cmd.Flags().GetString("sql-file"); sqlFile != "" {
		contents, err := os.ReadFile(sqlFile)
		if err != nil {
			return ov, errors.Wrapf(err, "failed to read SQL file %s", sqlFile)
		}
		ov.SQL = string(contents)
	}

	return ov, nil
}
