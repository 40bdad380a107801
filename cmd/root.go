package cmd

import (
	"fmt"
	"os"
	"syscall"

	"github.com/aaraujo/ssbctl/internal/config"
	"github.com/aaraujo/ssbctl/pkg/cli"
	"github.com/aaraujo/ssbctl/pkg/ssb"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configFile string
	baseURL    string
	username   string
	password   string
	debug      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath(), "path to the ssbctl config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "base URL of the SSB API, e.g. https://ssb.example.com:18121")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "SSB user name")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "SSB password; prompted for when not set anywhere")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:     "ssbctl",
	Short:   "Manage SQL Stream Builder jobs from the command line",
	Long:    "ssbctl lists projects and jobs of a SQL Stream Builder instance and starts, stops and updates jobs through its REST API.",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// newManager merges the config file with the connection flags, prompts for a
// missing password and builds the job manager. Flags win over file values.
func newManager() (*ssb.Manager, error) {
	profile, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	url, user, pass := baseURL, username, password
	if server := profile.Server; server != nil {
		if url == "" {
			url = server.BaseURL
		}
		if user == "" {
			user = server.Username
		}
		if pass == "" {
			pass = server.Password
		}
	}

	if url == "" {
		return nil, errors.New("no base URL configured; set --base-url or add it to the config file")
	}
	if user == "" {
		return nil, errors.New("no user name configured; set --username or add it to the config file")
	}
	if pass == "" {
		if pass, err = promptPassword(user); err != nil {
			return nil, err
		}
	}

	return ssb.NewManager(cli.NewAPIClient(url, user, pass)), nil
}

func promptPassword(user string) (string, error) {
	fmt.Fprintf(os.Stderr, "password for %s: ", user)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read password")
	}
	return string(raw), nil
}
