// internal/server/server.go

// Package server exposes the conversation pipeline over a WebSocket
// endpoint plus the usual health and metrics surfaces.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"realty-concierge/internal/common/logger"
	"realty-concierge/internal/common/observability"
	"realty-concierge/internal/models"
	"realty-concierge/internal/orchestrator"
	"realty-concierge/internal/session"
)

const (
	writeTimeout = 10 * time.Second
	turnTimeout  = 30 * time.Second
)

type Server struct {
	orchestrator *orchestrator.Orchestrator
	sessions     session.Store
	obs          *observability.Observability
	logger       logger.Logger

	httpServer *http.Server
	upgrader   websocket.Upgrader
}

func New(addr string, orch *orchestrator.Orchestrator, sessions session.Store, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		orchestrator: orch,
		sessions:     sessions,
		obs:          obs,
		logger:       log.WithFields(map[string]interface{}{"component": "server"}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The widget is embedded on arbitrary marketing pages.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", map[string]interface{}{"addr": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleWebSocket runs the per-connection message loop. Each connection gets
// its own session id; turns within a connection share the remembered phone
// number so a bare session_end frame can still trigger the follow-up.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", map[string]interface{}{"error": err.Error()})
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	log := s.logger.WithFields(map[string]interface{}{"sessionId": sessionID})
	log.Info("connection opened", map[string]interface{}{"remote": r.RemoteAddr})

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("connection dropped", map[string]interface{}{"error": err.Error()})
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		// A malformed frame degrades to an empty-message turn, which the
		// pipeline answers with a generic greeting.
		var req models.TurnRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			log.Warn("malformed turn frame", map[string]interface{}{"error": err.Error()})
			req = models.TurnRequest{}
		}

		result := s.processTurn(r.Context(), sessionID, req, log)

		if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return
		}
		if err := conn.WriteJSON(result); err != nil {
			log.Warn("write failed", map[string]interface{}{"error": err.Error()})
			return
		}
	}
}

func (s *Server) processTurn(ctx context.Context, sessionID string, req models.TurnRequest, log logger.Logger) models.TurnResult {
	ctx, cancel := context.WithTimeout(ctx, turnTimeout)
	defer cancel()

	start := time.Now()

	if req.Phone != "" {
		if err := s.sessions.RememberPhone(ctx, sessionID, req.Phone); err != nil {
			log.Warn("failed to persist phone", map[string]interface{}{"error": err.Error()})
		}
	} else if stored, err := s.sessions.Phone(ctx, sessionID); err == nil && stored != "" {
		req.Phone = stored
	}

	result := s.orchestrator.Process(ctx, req)

	status := "completed"
	if len(result.Recommendations) == 0 {
		status = "no_match"
	}
	s.obs.RecordTurnProcessed(ctx, status)
	s.obs.RecordTurnDuration(ctx, time.Since(start), status)

	log.Debug("turn processed", map[string]interface{}{
		"status":          status,
		"recommendations": len(result.Recommendations),
		"durationMs":      time.Since(start).Milliseconds(),
	})

	return result
}
