package debugsrv

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go-beastfight/internal/app"
	"go-beastfight/internal/system"

	"github.com/gorilla/websocket"
)

type fakeSource struct {
	snap atomic.Pointer[app.Snapshot]
}

func (f *fakeSource) Snapshot() *app.Snapshot { return f.snap.Load() }

func newSource() *fakeSource {
	src := &fakeSource{}
	src.snap.Store(&app.Snapshot{
		Mode:  "duel",
		Phase: app.PhaseActive,
		Steps: 7,
		Units: []app.UnitState{
			{ID: "u_dragon", Name: "Ignis", Team: 0, Health: 150, MaxHealth: 220},
			{ID: "u_phoenix", Name: "Inferna", Team: 1, Health: 90, MaxHealth: 200},
		},
		Teams: []app.TeamState{{Team: 0, Alive: 1}, {Team: 1, Alive: 1}},
		Stats: []system.UnitStats{{ID: "u_dragon", Name: "Ignis", DamageDealt: 110}},
	})
	return src
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMatchEndpoint(t *testing.T) {
	srv := New(newSource(), quietLogger())
	rec := get(t, srv.Handler(), "/debug/match")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	var snap app.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.Steps != 7 || len(snap.Units) != 2 || snap.Phase != app.PhaseActive {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
}

func TestStatsEndpoint(t *testing.T) {
	srv := New(newSource(), quietLogger())
	rec := get(t, srv.Handler(), "/debug/stats")
	var stats []system.UnitStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if len(stats) != 1 || stats[0].DamageDealt != 110 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestUnitEndpoint(t *testing.T) {
	srv := New(newSource(), quietLogger())

	rec := get(t, srv.Handler(), "/debug/units/u_phoenix")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var u app.UnitState
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("failed to decode unit: %v", err)
	}
	if u.Name != "Inferna" || u.Health != 90 {
		t.Errorf("Unexpected unit %+v", u)
	}

	if rec := get(t, srv.Handler(), "/debug/units/nobody"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown unit, got %d", rec.Code)
	}
}

func TestEndpointsWithoutMatch(t *testing.T) {
	srv := New(&fakeSource{}, quietLogger())
	for _, path := range []string{"/debug/match", "/debug/stats", "/debug/units/x"} {
		if rec := get(t, srv.Handler(), path); rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", path, rec.Code)
		}
	}
}

func TestRejectsWrongMethod(t *testing.T) {
	srv := New(newSource(), quietLogger())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/match", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestPprofIndex(t *testing.T) {
	srv := New(newSource(), quietLogger())
	rec := get(t, srv.Handler(), "/debug/pprof/")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected pprof index, got %d", rec.Code)
	}
}

func TestWebsocketFeed(t *testing.T) {
	src := newSource()
	srv := New(src, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Hub().Run(ctx)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/debug/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial feed: %v", err)
	}
	defer conn.Close()

	read := func() app.Snapshot {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("failed to read feed: %v", err)
		}
		var snap app.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			t.Fatalf("failed to decode feed message: %v", err)
		}
		return snap
	}

	// Сразу после подключения приходит текущий снимок.
	if snap := read(); snap.Steps != 7 {
		t.Fatalf("Expected initial snapshot at step 7, got %d", snap.Steps)
	}

	next := *src.Snapshot()
	next.Steps = 8
	src.snap.Store(&next)
	// Тик мог уйти до подмены снимка, поэтому ждём несколько сообщений.
	for i := 0; i < 5; i++ {
		if snap := read(); snap.Steps == 8 {
			return
		}
	}
	t.Error("Expected pushed snapshot at step 8")
}
