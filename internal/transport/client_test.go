package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/gorilla/websocket"
)

type testServer struct {
	*httptest.Server
	received chan string
}

// newTestServer greets every connection with snapshot and collects the
// frames it is sent.
func newTestServer(t *testing.T, snapshot ...string) *testServer {
	t.Helper()
	s := &testServer{received: make(chan string, 16)}
	upgrader := websocket.Upgrader{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for _, frame := range snapshot {
			if err := ws.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}
		for {
			_, message, err := ws.ReadMessage()
			if err != nil {
				return
			}
			s.received <- string(message)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *testServer) wsURL() string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

func testSettings() *Settings {
	settings := DefaultSettings()
	settings.ReconnectDelay = 20 * time.Millisecond
	settings.WriteTimeout = time.Second
	return settings
}

func next(t *testing.T, client *Client) Message {
	t.Helper()
	select {
	case m, ok := <-client.Inbound():
		if !ok {
			t.Fatalf("inbound closed")
		}
		return m
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for a message")
	}
	return Message{}
}

func TestClientReceivesFramesInOrder(t *testing.T) {
	server := newTestServer(t, "one", "two")
	client := NewClient(context.Background(), server.wsURL(), testSettings())
	defer client.Close()

	m := next(t, client)
	assert.Equal(t, m.Kind, KindConnected)
	assert.Equal(t, m.Connection, uint64(1))

	m = next(t, client)
	assert.Equal(t, m.Kind, KindFrame)
	assert.Equal(t, string(m.Data), "one")
	assert.Equal(t, m.Connection, uint64(1))

	m = next(t, client)
	assert.Equal(t, string(m.Data), "two")
}

func TestClientSendAndFlush(t *testing.T) {
	server := newTestServer(t)
	client := NewClient(context.Background(), server.wsURL(), testSettings())
	defer client.Close()

	assert.Equal(t, next(t, client).Kind, KindConnected)
	assert.Equal(t, client.Send([]byte(`{"method":"save"}`)), nil)
	assert.Equal(t, client.Flush(5*time.Second), true)

	select {
	case got := <-server.received:
		assert.Equal(t, got, `{"method":"save"}`)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not receive the frame")
	}
}

func TestClientReconnectStartsNewConnection(t *testing.T) {
	server := newTestServer(t, "snapshot")
	client := NewClient(context.Background(), server.wsURL(), testSettings())
	defer client.Close()

	assert.Equal(t, next(t, client).Kind, KindConnected)
	assert.Equal(t, string(next(t, client).Data), "snapshot")

	client.Reconnect()

	m := next(t, client)
	assert.Equal(t, m.Kind, KindDisconnected)
	assert.Equal(t, m.Connection, uint64(1))

	m = next(t, client)
	assert.Equal(t, m.Kind, KindConnected)
	assert.Equal(t, m.Connection, uint64(2))

	m = next(t, client)
	assert.Equal(t, string(m.Data), "snapshot")
	assert.Equal(t, m.Connection, uint64(2))
}

func TestClientRedialsAfterDialFailure(t *testing.T) {
	client := NewClient(context.Background(), "ws://127.0.0.1:1", testSettings())

	m := next(t, client)
	assert.Equal(t, m.Kind, KindDisconnected)
	assert.NotEqual(t, m.Err, nil)

	m = next(t, client)
	assert.Equal(t, m.Kind, KindDisconnected)

	client.Close()
	select {
	case _, ok := <-client.Inbound():
		for ok {
			_, ok = <-client.Inbound()
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("inbound not closed after Close")
	}
}

func TestSendAfterCloseFails(t *testing.T) {
	client := NewClient(context.Background(), "ws://127.0.0.1:1", testSettings())
	client.Close()
	assert.NotEqual(t, client.Send([]byte("x")), nil)
	assert.Equal(t, client.Flush(10*time.Millisecond), true)
}
