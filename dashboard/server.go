// Package dashboard serves the Mission Sustainability single-page UI and its
// websocket mission channel.
package dashboard

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"

	"taskforce/dispatch"
	"taskforce/roster"
	"taskforce/store"
	"taskforce/streamers"
)

//go:embed static/index.html
var staticFS embed.FS

const timeFormat = "2006-01-02 15:04:05"

// ExecutorFactory builds a dispatch executor bound to a per-connection
// event handler.
type ExecutorFactory func(handler streamers.MissionHandler) *dispatch.Executor

// Server hosts the dashboard page, the websocket channel, and the mission
// history API.
type Server struct {
	resolver    *roster.Resolver
	stores      *store.Bundle
	newExecutor ExecutorFactory
	log         hclog.Logger

	page     *template.Template
	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

func NewServer(resolver *roster.Resolver, stores *store.Bundle, factory ExecutorFactory, log hclog.Logger) (*Server, error) {
	page, err := template.ParseFS(staticFS, "static/index.html")
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Server{
		resolver:    resolver,
		stores:      stores,
		newExecutor: factory,
		log:         log,
		page:        page,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// Routes returns the dashboard HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/api/missions", s.handleMissions)
	return mux
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("dashboard listening", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

type pageData struct {
	Fact    string
	Choices []roster.Choice
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{
		Fact:    RandomFact(),
		Choices: roster.Choices(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.log.Error("render dashboard page", "error", err)
	}
}

func (s *Server) handleMissions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}

	records, total, err := s.stores.Missions.ListMissions(limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"missions": records,
		"total":    total,
	})
}

// wsConn serializes writes to a websocket connection. Agent events and
// terminal frames come from the same dispatch goroutine, but the write lock
// keeps the invariant cheaply explicit.
type wsConn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *wsConn) writeEnvelope(env *Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	conn := &wsConn{ws: ws}

	// Messages are handled sequentially, so each connection runs at most one
	// dispatch at a time.
	for {
		_, message, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("websocket read error", "error", err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			s.log.Warn("invalid websocket message", "error", err)
			continue
		}

		switch env.Type {
		case TypeLaunchMission:
			s.handleLaunch(r.Context(), conn, &env)
		default:
			s.log.Warn("unhandled message type", "type", env.Type)
		}
	}
}

func (s *Server) handleLaunch(ctx context.Context, conn *wsConn, env *Envelope) {
	var payload LaunchMissionPayload
	if err := DecodePayload(env, &payload); err != nil {
		s.sendError(conn, env.RequestID, "invalid launch_mission payload: "+err.Error())
		return
	}

	sel := s.resolver.Resolve(roster.Choice(payload.Operative))

	ack, err := NewResponse(env.RequestID, TypeMissionAck, MissionAckPayload{
		Operative: string(sel.Choice),
		StartedAt: time.Now().Format(timeFormat),
	})
	if err == nil {
		err = conn.writeEnvelope(ack)
	}
	if err != nil {
		s.log.Warn("failed to ack launch", "error", err)
		return
	}

	handler := newWSMissionHandler(conn, s.log)
	executor := s.newExecutor(handler)

	result := executor.Dispatch(ctx, sel.Choice, payload.Topic)

	switch {
	case result.IsWarning():
		s.sendTerminal(conn, env.RequestID, TypeMissionWarning, MissionWarningPayload{Message: result.Warning})
	case result.IsError():
		s.sendError(conn, env.RequestID, result.Err)
	case result.IsEmpty():
		s.sendTerminal(conn, env.RequestID, TypeMissionWarning, MissionWarningPayload{Message: dispatch.NoContentWarning})
	default:
		s.sendTerminal(conn, env.RequestID, TypeMissionReport, MissionReportPayload{
			Operative:   string(sel.Choice),
			BannerClass: sel.Meta.BannerClass,
			Icon:        sel.Meta.Icon,
			Report:      result.Text,
		})
	}
}

func (s *Server) sendError(conn *wsConn, requestID, message string) {
	s.sendTerminal(conn, requestID, TypeMissionError, MissionErrorPayload{Message: message})
}

func (s *Server) sendTerminal(conn *wsConn, requestID string, t MessageType, payload any) {
	resp, err := NewResponse(requestID, t, payload)
	if err == nil {
		err = conn.writeEnvelope(resp)
	}
	if err != nil {
		s.log.Warn("failed to send terminal frame", "type", t, "error", err)
	}
}
