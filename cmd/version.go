package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Long = fmt.Sprintf(`Taskforce %s

Multi-agent dispatch dashboard for Mission Sustainability.

Pick an operative (or the full task force), hand it a mission topic, and
get back a sustainability report backed by live web, news, and forum search.

Get started:
  taskforce serve                 Start the dashboard server
  taskforce dispatch <topic>      Run a mission from the terminal
  taskforce dataset analyze       Summarize the bundled air quality dataset
  taskforce vars set <name> <v>   Store an API key`, Version)
}
