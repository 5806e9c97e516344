package dispatch_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskforce/agent"
	"taskforce/dispatch"
	"taskforce/roster"
	"taskforce/store"
)

// fakeRunner is a scripted run contract with a call counter.
type fakeRunner struct {
	calls  int
	result *agent.RunResult
	err    error
	topics []string
}

func (f *fakeRunner) Run(ctx context.Context, topic string) (*agent.RunResult, error) {
	f.calls++
	f.topics = append(f.topics, topic)
	return f.result, f.err
}

var _ = Describe("Executor", func() {
	var (
		resolver *roster.Resolver
		runner   *fakeRunner
		executor *dispatch.Executor
	)

	newExecutor := func(opts dispatch.Options) *dispatch.Executor {
		if opts.Resolver == nil {
			opts.Resolver = resolver
		}
		if opts.Runners == nil {
			opts.Runners = func(roster.Selection) (agent.Runner, error) { return runner, nil }
		}
		return dispatch.NewExecutor(opts)
	}

	BeforeEach(func() {
		registry := roster.BuildRegistry()
		resolver = roster.NewResolver(registry, roster.BuildTeam(registry))
		runner = &fakeRunner{result: &agent.RunResult{Content: "X"}}
		executor = newExecutor(dispatch.Options{})
	})

	Describe("blank topics", func() {
		It("short-circuits to a warning without invoking the runner", func() {
			result := executor.Dispatch(context.Background(), roster.ChoiceNewsAnalyst, "   \t\n")
			Expect(result.IsWarning()).To(BeTrue())
			Expect(result.Warning).To(Equal(dispatch.BlankTopicWarning))
			Expect(runner.calls).To(BeZero())
		})

		It("treats an empty string the same way", func() {
			result := executor.Dispatch(context.Background(), roster.ChoiceFullTaskForce, "")
			Expect(result.IsWarning()).To(BeTrue())
			Expect(runner.calls).To(BeZero())
		})
	})

	Describe("agent dispatches", func() {
		It("returns the runner's content as text", func() {
			result := executor.Dispatch(context.Background(), roster.ChoiceNewsAnalyst, "solar in Lahore")
			Expect(result.IsText()).To(BeTrue())
			Expect(result.Text).To(Equal("X"))
			Expect(runner.calls).To(Equal(1))
			Expect(runner.topics).To(ConsistOf("solar in Lahore"))
		})

		It("trims the topic before running", func() {
			executor.Dispatch(context.Background(), roster.ChoiceNewsAnalyst, "  wind farms  ")
			Expect(runner.topics).To(ConsistOf("wind farms"))
		})

		It("converts a runner error into an error result", func() {
			runner.err = errors.New("boom")
			runner.result = nil
			result := executor.Dispatch(context.Background(), roster.ChoicePolicyReviewer, "topic")
			Expect(result.IsError()).To(BeTrue())
			Expect(result.Err).To(ContainSubstring("boom"))
		})

		It("maps a contentless result to empty", func() {
			runner.result = &agent.RunResult{}
			result := executor.Dispatch(context.Background(), roster.ChoiceInnovationScout, "topic")
			Expect(result.IsEmpty()).To(BeTrue())
		})

		It("maps a nil result to empty", func() {
			runner.result = nil
			result := executor.Dispatch(context.Background(), roster.ChoiceNewsAnalyst, "topic")
			Expect(result.IsEmpty()).To(BeTrue())
		})

		It("surfaces runner construction failures as errors", func() {
			executor = newExecutor(dispatch.Options{
				Runners: func(roster.Selection) (agent.Runner, error) {
					return nil, errors.New("no model block allows 'qwen/qwen3-32b'")
				},
			})
			result := executor.Dispatch(context.Background(), roster.ChoiceNewsAnalyst, "topic")
			Expect(result.IsError()).To(BeTrue())
			Expect(result.Err).To(ContainSubstring("no model block"))
		})
	})

	Describe("the data analyst path", func() {
		It("uses the analyzer instead of a runner", func() {
			analyzed := 0
			executor = newExecutor(dispatch.Options{
				Analyzer: func(path string) (string, error) {
					analyzed++
					return "report", nil
				},
			})
			result := executor.Dispatch(context.Background(), roster.ChoiceDataAnalyst, "topic")
			Expect(result.IsText()).To(BeTrue())
			Expect(result.Text).To(Equal("report"))
			Expect(analyzed).To(Equal(1))
			Expect(runner.calls).To(BeZero())
		})

		It("converts analyzer failures into error results", func() {
			executor = newExecutor(dispatch.Options{
				Analyzer: func(string) (string, error) { return "", errors.New("no such file") },
			})
			result := executor.Dispatch(context.Background(), roster.ChoiceDataAnalyst, "topic")
			Expect(result.IsError()).To(BeTrue())
			Expect(result.Err).To(ContainSubstring("no such file"))
		})
	})

	Describe("mission recording", func() {
		var missions store.MissionStore

		BeforeEach(func() {
			missions = store.NewMemoryBundle().Missions
			executor = newExecutor(dispatch.Options{Missions: missions})
		})

		It("records a completed mission", func() {
			executor.Dispatch(context.Background(), roster.ChoiceNewsAnalyst, "topic")
			records, total, err := missions.ListMissions(10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(records[0].Status).To(Equal(store.StatusCompleted))
			Expect(records[0].Result).To(Equal("X"))
			Expect(records[0].Operative).To(Equal(string(roster.ChoiceNewsAnalyst)))
		})

		It("records failures with the error message", func() {
			runner.err = errors.New("boom")
			executor.Dispatch(context.Background(), roster.ChoiceNewsAnalyst, "topic")
			records, _, err := missions.ListMissions(10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(records[0].Status).To(Equal(store.StatusFailed))
			Expect(records[0].Error).To(ContainSubstring("boom"))
		})

		It("records nothing for a blank topic", func() {
			executor.Dispatch(context.Background(), roster.ChoiceNewsAnalyst, "  ")
			_, total, err := missions.ListMissions(10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
		})
	})
})
