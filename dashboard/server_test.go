package dashboard_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskforce/agent"
	"taskforce/dashboard"
	"taskforce/dispatch"
	"taskforce/roster"
	"taskforce/store"
	"taskforce/streamers"
)

// fakeRunner is a scripted run contract for the websocket path.
type fakeRunner struct {
	result *agent.RunResult
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, topic string) (*agent.RunResult, error) {
	return f.result, f.err
}

var _ = Describe("Server", func() {
	var (
		runner  *fakeRunner
		stores  *store.Bundle
		srv     *dashboard.Server
		httpSrv *httptest.Server
	)

	BeforeEach(func() {
		runner = &fakeRunner{result: &agent.RunResult{Content: "mission report"}}

		registry := roster.BuildRegistry()
		resolver := roster.NewResolver(registry, roster.BuildTeam(registry))
		stores = store.NewMemoryBundle()

		factory := func(handler streamers.MissionHandler) *dispatch.Executor {
			return dispatch.NewExecutor(dispatch.Options{
				Resolver: resolver,
				Runners: func(sel roster.Selection) (agent.Runner, error) {
					return runner, nil
				},
				Analyzer: func(string) (string, error) { return "dataset report", nil },
				Missions: stores.Missions,
			})
		}

		var err error
		srv, err = dashboard.NewServer(resolver, stores, factory, nil)
		Expect(err).NotTo(HaveOccurred())

		httpSrv = httptest.NewServer(srv.Routes())
		DeferCleanup(httpSrv.Close)
	})

	dialWS := func() *websocket.Conn {
		wsURL := "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/ws"
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { conn.Close() })
		return conn
	}

	launch := func(conn *websocket.Conn, operative, topic string) {
		env, err := dashboard.NewEvent(dashboard.TypeLaunchMission, dashboard.LaunchMissionPayload{
			Operative: operative,
			Topic:     topic,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(conn.WriteJSON(env)).To(Succeed())
	}

	readEnvelope := func(conn *websocket.Conn) *dashboard.Envelope {
		var env dashboard.Envelope
		Expect(conn.ReadJSON(&env)).To(Succeed())
		return &env
	}

	// readTerminal skips agent_event frames and returns the terminal frame.
	readTerminal := func(conn *websocket.Conn) *dashboard.Envelope {
		for i := 0; i < 50; i++ {
			env := readEnvelope(conn)
			if env.Type != dashboard.TypeAgentEvent {
				return env
			}
		}
		Fail("no terminal frame received")
		return nil
	}

	Describe("GET /", func() {
		It("serves the dashboard page with all five operatives and a fact", func() {
			resp, err := http.Get(httpSrv.URL + "/")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			page := string(body)

			Expect(page).To(ContainSubstring("Mission Sustainability"))
			for _, choice := range roster.Choices() {
				Expect(page).To(ContainSubstring(string(choice)))
			}
			found := false
			for _, fact := range dashboard.Facts() {
				if strings.Contains(page, fact) {
					found = true
				}
			}
			Expect(found).To(BeTrue(), "page should include a sustainability fact")
		})

		It("404s unknown paths", func() {
			resp, err := http.Get(httpSrv.URL + "/nope")
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("the websocket mission channel", func() {
		It("acks and reports a successful mission", func() {
			conn := dialWS()
			launch(conn, string(roster.ChoiceNewsAnalyst), "solar in Lahore")

			ack := readEnvelope(conn)
			Expect(ack.Type).To(Equal(dashboard.TypeMissionAck))
			var ackPayload dashboard.MissionAckPayload
			Expect(dashboard.DecodePayload(ack, &ackPayload)).To(Succeed())
			Expect(ackPayload.Operative).To(Equal(string(roster.ChoiceNewsAnalyst)))
			Expect(ackPayload.StartedAt).NotTo(BeEmpty())

			report := readTerminal(conn)
			Expect(report.Type).To(Equal(dashboard.TypeMissionReport))
			var payload dashboard.MissionReportPayload
			Expect(dashboard.DecodePayload(report, &payload)).To(Succeed())
			Expect(payload.Report).To(Equal("mission report"))
			Expect(payload.BannerClass).To(Equal("news-analyst-banner"))
			Expect(payload.Icon).To(Equal("📰"))
		})

		It("falls back to the task force for unknown operatives", func() {
			conn := dialWS()
			launch(conn, "🤖 Unknown", "topic")

			ack := readEnvelope(conn)
			var ackPayload dashboard.MissionAckPayload
			Expect(dashboard.DecodePayload(ack, &ackPayload)).To(Succeed())
			Expect(ackPayload.Operative).To(Equal(string(roster.ChoiceFullTaskForce)))

			report := readTerminal(conn)
			var payload dashboard.MissionReportPayload
			Expect(dashboard.DecodePayload(report, &payload)).To(Succeed())
			Expect(payload.BannerClass).To(Equal("sustainability-team-banner"))
		})

		It("warns on a blank topic without running anything", func() {
			conn := dialWS()
			launch(conn, string(roster.ChoiceNewsAnalyst), "   ")

			readEnvelope(conn) // ack
			warning := readTerminal(conn)
			Expect(warning.Type).To(Equal(dashboard.TypeMissionWarning))
			var payload dashboard.MissionWarningPayload
			Expect(dashboard.DecodePayload(warning, &payload)).To(Succeed())
			Expect(payload.Message).To(Equal(dispatch.BlankTopicWarning))
		})

		It("converts runner failures into mission_error frames", func() {
			runner.err = errors.New("boom")
			conn := dialWS()
			launch(conn, string(roster.ChoicePolicyReviewer), "topic")

			readEnvelope(conn) // ack
			errFrame := readTerminal(conn)
			Expect(errFrame.Type).To(Equal(dashboard.TypeMissionError))
			var payload dashboard.MissionErrorPayload
			Expect(dashboard.DecodePayload(errFrame, &payload)).To(Succeed())
			Expect(payload.Message).To(ContainSubstring("boom"))
		})

		It("warns when the runner returns no content", func() {
			runner.result = &agent.RunResult{}
			conn := dialWS()
			launch(conn, string(roster.ChoiceInnovationScout), "topic")

			readEnvelope(conn) // ack
			warning := readTerminal(conn)
			Expect(warning.Type).To(Equal(dashboard.TypeMissionWarning))
			var payload dashboard.MissionWarningPayload
			Expect(dashboard.DecodePayload(warning, &payload)).To(Succeed())
			Expect(payload.Message).To(Equal(dispatch.NoContentWarning))
		})

		It("routes the data analyst to the local dataset report", func() {
			conn := dialWS()
			launch(conn, string(roster.ChoiceDataAnalyst), "trends")

			readEnvelope(conn) // ack
			report := readTerminal(conn)
			Expect(report.Type).To(Equal(dashboard.TypeMissionReport))
			var payload dashboard.MissionReportPayload
			Expect(dashboard.DecodePayload(report, &payload)).To(Succeed())
			Expect(payload.Report).To(Equal("dataset report"))
			Expect(payload.BannerClass).To(Equal("data-analyst-banner"))
		})
	})

	Describe("GET /api/missions", func() {
		It("lists recorded missions", func() {
			conn := dialWS()
			launch(conn, string(roster.ChoiceNewsAnalyst), "solar")
			readEnvelope(conn) // ack
			readTerminal(conn) // report

			resp, err := http.Get(httpSrv.URL + "/api/missions")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(ContainSubstring(`"total":1`))
			Expect(string(body)).To(ContainSubstring("solar"))
		})
	})
})
