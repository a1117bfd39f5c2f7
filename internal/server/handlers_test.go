package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flemzord/chatwrapped/internal/analyzer"
	"github.com/flemzord/chatwrapped/internal/archive"
	"github.com/flemzord/chatwrapped/internal/config"
)

const exportPage = `{
  "participants": [{"name": "Alice"}, {"name": "Bob"}],
  "messages": [
    {"sender_name": "Bob", "timestamp_ms": 1704070000000, "content": "hey"},
    {"sender_name": "Alice", "timestamp_ms": 1704067200000, "content": "hello"}
  ],
  "title": "Weekend Crew"
}`

func newTestServer(files archive.FileSet) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, config.Default(), files)
}

func testFiles() archive.FileSet {
	return archive.FileSet{
		"messages/inbox/weekendcrew_1/message_1.json": []byte(exportPage),
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(testFiles())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Chats != 1 {
		t.Errorf("resp = %+v, want ok with 1 chat", resp)
	}
}

func TestChats(t *testing.T) {
	srv := newTestServer(testFiles())

	req := httptest.NewRequest(http.MethodGet, "/chats", nil)
	rr := httptest.NewRecorder()
	srv.router().ServeHTTP(rr, req)

	var resp ChatsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Chats) != 1 || resp.Chats[0] != "weekendcrew" {
		t.Errorf("chats = %v, want [weekendcrew]", resp.Chats)
	}
}

func TestChats_EmptyArchive(t *testing.T) {
	srv := newTestServer(archive.FileSet{})

	req := httptest.NewRequest(http.MethodGet, "/chats", nil)
	rr := httptest.NewRecorder()
	srv.router().ServeHTTP(rr, req)

	if got := rr.Body.String(); got != "{\"chats\":[]}\n" {
		t.Errorf("body = %q, want an empty JSON list, not null", got)
	}
}

func TestWrapped(t *testing.T) {
	srv := newTestServer(testFiles())

	req := httptest.NewRequest(http.MethodGet, "/wrapped/weekendcrew", nil)
	rr := httptest.NewRecorder()
	srv.router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var wrapped analyzer.WrappedData
	if err := json.NewDecoder(rr.Body).Decode(&wrapped); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if wrapped.ChatName != "Weekend Crew" {
		t.Errorf("ChatName = %q, want the export title", wrapped.ChatName)
	}
	if wrapped.Stats.TotalMessages != 2 {
		t.Errorf("TotalMessages = %d, want 2", wrapped.Stats.TotalMessages)
	}
}

func TestWrapped_UnknownChat(t *testing.T) {
	srv := newTestServer(testFiles())

	req := httptest.NewRequest(http.MethodGet, "/wrapped/ghosts", nil)
	rr := httptest.NewRecorder()
	srv.router().ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestWrapped_UnparsableArchive(t *testing.T) {
	srv := newTestServer(archive.FileSet{
		"messages/inbox/crew_1/message_1.json": []byte("not json"),
	})

	req := httptest.NewRequest(http.MethodGet, "/wrapped/crew", nil)
	rr := httptest.NewRecorder()
	srv.router().ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(testFiles())

	// Run one analysis so counters move.
	analyze := httptest.NewRequest(http.MethodGet, "/wrapped/weekendcrew", nil)
	srv.router().ServeHTTP(httptest.NewRecorder(), analyze)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	srv.router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if want := "chatwrapped_analyses_total 1"; !strings.Contains(body, want) {
		t.Errorf("metrics output missing %q", want)
	}
}
