package dispatch

import (
	"context"
	"fmt"

	"taskforce/agent"
	"taskforce/config"
	"taskforce/llm"
	"taskforce/roster"
	"taskforce/streamers"
)

// NewRunnerFactory wires selections to live agent runners using the model
// blocks in cfg. Each selection's model is matched against a configured
// provider; a model no block allows is a configuration error surfaced at
// dispatch time.
func NewRunnerFactory(ctx context.Context, cfg *config.Config, handler streamers.MissionHandler) RunnerFactory {
	providers := make(map[string]llm.Provider)

	providerFor := func(wireModel string) (llm.Provider, error) {
		model, err := cfg.ModelFor(wireModel)
		if err != nil {
			return nil, err
		}
		if p, ok := providers[model.Name]; ok {
			return p, nil
		}
		p, err := llm.NewProvider(ctx, string(model.Provider), model.APIKey)
		if err != nil {
			return nil, fmt.Errorf("model block '%s': %w", model.Name, err)
		}
		providers[model.Name] = p
		return p, nil
	}

	return func(sel roster.Selection) (agent.Runner, error) {
		if sel.IsTeam() {
			provider, err := providerFor(sel.Team.Model)
			if err != nil {
				return nil, err
			}
			return agent.NewTeam(agent.TeamOptions{
				Spec:     *sel.Team,
				Provider: provider,
				Handler:  handler,
			})
		}

		provider, err := providerFor(sel.Agent.Model)
		if err != nil {
			return nil, err
		}
		return agent.New(agent.Options{
			Spec:     sel.Agent,
			Provider: provider,
			Handler:  handler,
		}), nil
	}
}
