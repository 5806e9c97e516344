package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taskforce/dataset"
	"taskforce/dispatch"
	"taskforce/roster"
	"taskforce/store"
	"taskforce/streamers/cli"
)

var dispatchOperative string

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [topic]",
	Short: "Dispatch a mission from the terminal",
	Long: `Run one mission without the dashboard. The topic is dispatched to the
chosen operative and the report is rendered in the terminal.

Operatives:
  news      📰 News Analyst
  data      📊 Data Analyst
  policy    📜 Policy Reviewer
  scout     💡 Innovations Scout
  team      🌐 Full Task Force (default)`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		topic := strings.Join(args, " ")

		cfg, err := loadConfig("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := dataset.EnsureSample(cfg.Server.DatasetPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error bootstrapping dataset: %v\n", err)
			os.Exit(1)
		}

		choice, err := choiceFromShorthand(dispatchOperative)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		registry := roster.BuildRegistry()
		resolver := roster.NewResolver(registry, roster.BuildTeam(registry))
		handler := cli.NewMissionHandler()

		executor := dispatch.NewExecutor(dispatch.Options{
			Resolver:    resolver,
			Runners:     dispatch.NewRunnerFactory(cmd.Context(), cfg, handler),
			DatasetPath: cfg.Server.DatasetPath,
			Missions:    store.NewMemoryBundle().Missions,
			Log:         newLogger("dispatch"),
		})

		handler.MissionStarted(string(choice), topic)
		result := executor.Dispatch(cmd.Context(), choice, topic)

		switch {
		case result.IsWarning():
			fmt.Println(result.Warning)
			os.Exit(1)
		case result.IsError():
			handler.MissionFailed(fmt.Errorf("%s", result.Err))
			os.Exit(1)
		case result.IsEmpty():
			fmt.Println(dispatch.NoContentWarning)
		default:
			handler.MissionCompleted(result.Text)
		}
	},
}

func choiceFromShorthand(name string) (roster.Choice, error) {
	switch name {
	case "news":
		return roster.ChoiceNewsAnalyst, nil
	case "data":
		return roster.ChoiceDataAnalyst, nil
	case "policy":
		return roster.ChoicePolicyReviewer, nil
	case "scout":
		return roster.ChoiceInnovationScout, nil
	case "team", "":
		return roster.ChoiceFullTaskForce, nil
	default:
		return "", fmt.Errorf("unknown operative '%s' (expected news, data, policy, scout, or team)", name)
	}
}

func init() {
	rootCmd.AddCommand(dispatchCmd)
	dispatchCmd.Flags().StringVarP(&dispatchOperative, "operative", "o", "team", "Operative to dispatch")
}
