package dev

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, rs *ReloadServer, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if rs.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("ClientCount = %d, want %d", rs.ClientCount(), want)
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return msg
}

func TestReloadServerBroadcast(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, rs, 1)

	rs.NotifyReload()
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeFull)
	}

	rs.NotifyCSS("style.css")
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeCSS {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeCSS)
	}
	if msg.File != "style.css" {
		t.Errorf("message file = %q, want style.css", msg.File)
	}
}

func TestReloadServerMultipleClients(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	a := dialReload(t, srv)
	b := dialReload(t, srv)
	waitForClients(t, rs, 2)

	rs.NotifyReload()
	for _, conn := range []*websocket.Conn{a, b} {
		if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
			t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeFull)
		}
	}
}

func TestReloadServerDropsDisconnectedClient(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, rs, 1)

	conn.Close()
	waitForClients(t, rs, 0)

	// Broadcasting with no clients is a no-op.
	rs.NotifyReload()
}

func TestReloadServerNoClients(t *testing.T) {
	rs := NewReloadServer()
	if rs.ClientCount() != 0 {
		t.Errorf("ClientCount = %d, want 0", rs.ClientCount())
	}
	rs.NotifyReload()
	rs.NotifyCSS("style.css")
}
