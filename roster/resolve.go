package roster

import "fmt"

// Choice is one of the five operative labels offered by the dashboard.
type Choice string

const (
	ChoiceNewsAnalyst     Choice = "📰 News Analyst"
	ChoiceDataAnalyst     Choice = "📊 Data Analyst"
	ChoicePolicyReviewer  Choice = "📜 Policy Reviewer"
	ChoiceInnovationScout Choice = "💡 Innovations Scout"
	ChoiceFullTaskForce   Choice = "🌐 Full Task Force"
)

// Choices returns the five labels in sidebar order.
func Choices() []Choice {
	return []Choice{
		ChoiceNewsAnalyst,
		ChoiceDataAnalyst,
		ChoicePolicyReviewer,
		ChoiceInnovationScout,
		ChoiceFullTaskForce,
	}
}

// PresentationMeta carries the cosmetic banner styling for a selection.
type PresentationMeta struct {
	BannerClass string
	Icon        string
}

// Selection is a resolved choice: either a single agent or the team, plus
// its presentation metadata.
type Selection struct {
	Choice Choice
	Agent  AgentSpec // set when Team is nil
	Team   *TeamSpec // set for the full task force
	Meta   PresentationMeta
}

// IsTeam reports whether the selection dispatches to the full task force.
func (s Selection) IsTeam() bool {
	return s.Team != nil
}

// SpecID returns the identifier of whichever spec the selection carries.
func (s Selection) SpecID() string {
	if s.Team != nil {
		return s.Team.ID
	}
	return s.Agent.ID
}

// Resolver maps choice labels onto the registry and team. It is a total
// function over the label set: any label outside the first four resolves to
// the full task force, matching the dashboard's historical fallback.
type Resolver struct {
	registry Registry
	team     TeamSpec
}

func NewResolver(registry Registry, team TeamSpec) *Resolver {
	return &Resolver{registry: registry, team: team}
}

// Resolve maps a choice to its selection. Unrecognized labels degrade to the
// full task force rather than erroring; callers outside the fixed-label UI
// should prefer ResolveStrict.
func (r *Resolver) Resolve(choice Choice) Selection {
	switch choice {
	case ChoiceNewsAnalyst:
		return Selection{
			Choice: choice,
			Agent:  r.registry.NewsAnalyst,
			Meta:   PresentationMeta{BannerClass: "news-analyst-banner", Icon: "📰"},
		}
	case ChoiceDataAnalyst:
		return Selection{
			Choice: choice,
			Agent:  r.registry.DataAnalyst,
			Meta:   PresentationMeta{BannerClass: "data-analyst-banner", Icon: "📊"},
		}
	case ChoicePolicyReviewer:
		return Selection{
			Choice: choice,
			Agent:  r.registry.PolicyReviewer,
			Meta:   PresentationMeta{BannerClass: "policy-reviewer-banner", Icon: "📜"},
		}
	case ChoiceInnovationScout:
		return Selection{
			Choice: choice,
			Agent:  r.registry.InnovationScout,
			Meta:   PresentationMeta{BannerClass: "innovation-scout-banner", Icon: "💡"},
		}
	default:
		team := r.team
		return Selection{
			Choice: ChoiceFullTaskForce,
			Team:   &team,
			Meta:   PresentationMeta{BannerClass: "sustainability-team-banner", Icon: "🌐"},
		}
	}
}

// ResolveStrict is Resolve restricted to the closed label set. Labels outside
// it are a configuration error, not a fallback.
func (r *Resolver) ResolveStrict(choice Choice) (Selection, error) {
	for _, known := range Choices() {
		if choice == known {
			return r.Resolve(choice), nil
		}
	}
	return Selection{}, fmt.Errorf("unknown operative %q", string(choice))
}
