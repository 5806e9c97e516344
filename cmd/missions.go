package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskforce/store"
)

var (
	missionsConfigPath string
	missionsLimit      int
	missionsOffset     int
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List recorded missions",
	Long: `List the mission log. Only meaningful with the sqlite storage backend;
the default memory backend forgets everything at process exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(missionsConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		stores, err := store.NewBundle(cfg.Storage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
			os.Exit(1)
		}
		defer stores.Close()

		records, total, err := stores.Missions.ListMissions(missionsLimit, missionsOffset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if total == 0 {
			fmt.Println("No missions recorded")
			return
		}

		fmt.Printf("%d mission(s) recorded\n\n", total)
		for _, r := range records {
			fmt.Printf("%s  %-10s  %s  %q\n", r.StartedAt.Format("2006-01-02 15:04:05"), r.Status, r.Operative, r.Topic)
			if r.Error != "" {
				fmt.Printf("    error: %s\n", r.Error)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(missionsCmd)
	missionsCmd.Flags().StringVarP(&missionsConfigPath, "config", "c", "", "Path to config file or directory")
	missionsCmd.Flags().IntVar(&missionsLimit, "limit", 50, "Maximum missions to list")
	missionsCmd.Flags().IntVar(&missionsOffset, "offset", 0, "Offset into the mission log")
}
