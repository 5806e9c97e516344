// Package dispatch sends a mission topic to a resolved operative and turns
// whatever happens into a MissionResult. Run failures stop here: they become
// displayable results, never propagated errors.
package dispatch

import (
	"context"
	"strings"

	"github.com/hashicorp/go-hclog"

	"taskforce/agent"
	"taskforce/dataset"
	"taskforce/roster"
	"taskforce/store"
)

// RunnerFactory builds the runner for a resolved selection. Injected so
// tests can substitute a fake run contract.
type RunnerFactory func(sel roster.Selection) (agent.Runner, error)

// Analyzer produces the local dataset report for the data analyst path.
type Analyzer func(path string) (string, error)

// Executor owns one dispatch pipeline. All collaborators are injected;
// the zero value is not usable, construct with NewExecutor.
type Executor struct {
	resolver    *roster.Resolver
	runners     RunnerFactory
	analyzer    Analyzer
	datasetPath string
	missions    store.MissionStore
	log         hclog.Logger
}

// Options configures a new Executor.
type Options struct {
	Resolver *roster.Resolver
	Runners  RunnerFactory
	// Analyzer defaults to dataset.Analyze
	Analyzer Analyzer
	// DatasetPath defaults to dataset.DefaultPath
	DatasetPath string
	// Missions records dispatch outcomes (optional)
	Missions store.MissionStore
	Log      hclog.Logger
}

func NewExecutor(opts Options) *Executor {
	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = dataset.Analyze
	}

	path := opts.DatasetPath
	if path == "" {
		path = dataset.DefaultPath
	}

	log := opts.Log
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Executor{
		resolver:    opts.Resolver,
		runners:     opts.Runners,
		analyzer:    analyzer,
		datasetPath: path,
		missions:    opts.Missions,
		log:         log,
	}
}

// Dispatch resolves the choice and runs the topic against it. A blank topic
// short-circuits to a warning before anything is resolved or recorded.
func (e *Executor) Dispatch(ctx context.Context, choice roster.Choice, topic string) MissionResult {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return WarningResult(BlankTopicWarning)
	}

	sel := e.resolver.Resolve(choice)

	missionID := e.recordStart(sel, topic)
	result := e.run(ctx, sel, topic)
	e.recordFinish(missionID, result)

	return result
}

func (e *Executor) run(ctx context.Context, sel roster.Selection, topic string) MissionResult {
	if sel.Choice == roster.ChoiceDataAnalyst {
		report, err := e.analyzer(e.datasetPath)
		if err != nil {
			return ErrorResult(err.Error())
		}
		return TextResult(report)
	}

	runner, err := e.runners(sel)
	if err != nil {
		return ErrorResult(err.Error())
	}

	result, err := runner.Run(ctx, topic)
	if err != nil {
		return ErrorResult(err.Error())
	}
	if result == nil || result.Content == "" {
		return EmptyResult()
	}
	return TextResult(result.Content)
}

// recordStart appends the mission to the store. Store failures are logged
// and ignored; the mission log must never block a dispatch.
func (e *Executor) recordStart(sel roster.Selection, topic string) string {
	if e.missions == nil {
		return ""
	}
	id, err := e.missions.CreateMission(string(sel.Choice), topic)
	if err != nil {
		e.log.Warn("failed to record mission start", "operative", sel.SpecID(), "error", err)
		return ""
	}
	return id
}

func (e *Executor) recordFinish(id string, result MissionResult) {
	if e.missions == nil || id == "" {
		return
	}

	status := store.StatusCompleted
	text := result.Text
	errMsg := ""
	switch {
	case result.IsEmpty():
		status = store.StatusEmpty
	case result.IsError():
		status = store.StatusFailed
		errMsg = result.Err
	}

	if err := e.missions.CompleteMission(id, status, text, errMsg); err != nil {
		e.log.Warn("failed to record mission outcome", "mission", id, "error", err)
	}
}
