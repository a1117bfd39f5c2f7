package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flemzord/chatwrapped/internal/archive"
	"github.com/flemzord/chatwrapped/pkg/app"
)

// HealthResponse is the JSON response for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Chats  int    `json:"chats"`
}

// handleHealth reports liveness plus how many chats the loaded archive holds.
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status: "ok",
			Chats:  len(archive.Chats(s.files)),
		})
	}
}

// ChatsResponse is the JSON response for GET /chats.
type ChatsResponse struct {
	Chats []string `json:"chats"`
}

func (s *Server) handleChats() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		chats := archive.Chats(s.files)
		if chats == nil {
			chats = []string{}
		}
		writeJSON(w, http.StatusOK, ChatsResponse{Chats: chats})
	}
}

// handleWrapped runs the analysis pipeline for one chat and returns the
// wrapped statistics. 404 for an unknown chat, 500 when every one of its
// files fails to parse.
func (s *Server) handleWrapped() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chat := chi.URLParam(r, "chat")

		result, err := app.AnalyzeChat(s.files, chat, s.cfg, s.logger)
		if err != nil {
			if errors.Is(err, app.ErrChatNotFound) {
				writeError(w, http.StatusNotFound, "unknown chat: "+chat)
				return
			}
			s.metrics.RequestErrors.Inc()
			s.logger.Error("analysis failed", "chat", chat, "error", err)
			writeError(w, http.StatusInternalServerError, "analysis failed")
			return
		}

		s.metrics.AnalysesRun.Inc()
		s.metrics.ParseFailures.Add(float64(result.ParseFailures))
		s.metrics.TimestampFallbacks.Add(float64(result.TimestampFallbacks))

		writeJSON(w, http.StatusOK, result.Wrapped)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
