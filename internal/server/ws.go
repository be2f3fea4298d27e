package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/rbhale-git/laser-tms/internal/model"
	"github.com/rbhale-git/laser-tms/internal/scenario"
	"github.com/rbhale-git/laser-tms/internal/solver"
)

// wsRequest carries one client message. The scenario payload uses the
// same optional-field schema as scenario files and POST /v1/solve.
type wsRequest struct {
	Type     string         `json:"type"`
	Scenario *scenario.File `json:"scenario"`
}

type wsResponse struct {
	Type     string       `json:"type"`
	Report   *reportDTO   `json:"report,omitempty"`
	Scenario *scenarioDTO `json:"scenario,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// handleWS serves interactive re-solving: each incoming scenario
// message gets one report back on the same connection. Validation and
// solver failures come back as error frames without closing the socket.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log.WithField("remote", conn.RemoteAddr().String()).Info("websocket client connected")

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("websocket read failed")
			}
			return
		}

		resp := s.answer(req)
		if err := conn.WriteJSON(&resp); err != nil {
			log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

func (s *Server) answer(req wsRequest) wsResponse {
	switch req.Type {
	case "defaults":
		dto := toScenarioDTO(model.DefaultScenario())
		return wsResponse{Type: "defaults", Scenario: &dto}

	case "solve", "":
		var f scenario.File
		if req.Scenario != nil {
			f = *req.Scenario
		}

		sc, err := f.Scenario()
		if err != nil {
			return wsResponse{Type: "error", Error: err.Error()}
		}

		rep, err := solver.Evaluate(sc)
		if err != nil {
			return wsResponse{Type: "error", Error: err.Error()}
		}

		dto := toReportDTO(rep)
		return wsResponse{Type: "report", Report: &dto}

	default:
		return wsResponse{Type: "error", Error: fmt.Sprintf("unknown message type %q", req.Type)}
	}
}
