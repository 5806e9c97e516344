package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskforce/dataset"
)

var datasetPath string

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Work with the bundled air quality dataset",
}

var datasetBootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Write the sample dataset if it does not exist",
	Run: func(cmd *cobra.Command, args []string) {
		if err := dataset.EnsureSample(datasetPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Dataset ready at %s\n", datasetPath)
	},
}

var datasetAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print the dataset summary and environmental trends",
	Run: func(cmd *cobra.Command, args []string) {
		if err := dataset.EnsureSample(datasetPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		report, err := dataset.Analyze(datasetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(report)
	},
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetBootstrapCmd)
	datasetCmd.AddCommand(datasetAnalyzeCmd)
	datasetCmd.PersistentFlags().StringVarP(&datasetPath, "path", "p", dataset.DefaultPath, "Dataset file path")
}
