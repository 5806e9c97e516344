package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"taskforce/config"
)

var rootCmd = &cobra.Command{
	Use:   "taskforce",
	Short: "Multi-agent task force for Mission Sustainability",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to the task force! Use --help to see available commands.")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString(os.Getenv("TASKFORCE_LOG_LEVEL")),
	})
}

// loadConfig loads and validates the config at path, falling back to the
// embedded default when no path is given and no local taskforce.hcl exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadAndValidate(path)
	}

	if _, err := os.Stat("taskforce.hcl"); err == nil {
		return config.LoadAndValidate("taskforce.hcl")
	}

	cfg, err := config.Default()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
