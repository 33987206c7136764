package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"
)

var (
	ErrSendTimeout = errors.New("timed out queueing frame")
	errReconnect   = errors.New("reconnect requested")
)

type Settings struct {
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	// ReadTimeout bounds the silence tolerated between pongs. Zero disables
	// the read deadline.
	ReadTimeout    time.Duration
	PingInterval   time.Duration
	ReconnectDelay time.Duration
	SendBufferSize int
}

func DefaultSettings() *Settings {
	return &Settings{
		HandshakeTimeout: 2 * time.Second,
		WriteTimeout:     5 * time.Second,
		ReadTimeout:      30 * time.Second,
		PingInterval:     10 * time.Second,
		ReconnectDelay:   2 * time.Second,
		SendBufferSize:   16,
	}
}

type Kind int

const (
	KindConnected Kind = iota
	KindFrame
	KindDisconnected
)

func (k Kind) String() string {
	switch k {
	case KindConnected:
		return "connected"
	case KindFrame:
		return "frame"
	default:
		return "disconnected"
	}
}

// Message is delivered in order on the inbound channel. Connection changes
// travel on the same channel as frames so a consumer never sees a frame from
// one connection after the notice of the next.
type Message struct {
	Kind       Kind
	Connection uint64
	Data       []byte
	Err        error
}

// Client keeps a websocket connection to the budget server open, redialing
// after failures and on request.
type Client struct {
	ctx    context.Context
	cancel context.CancelFunc

	url      string
	header   http.Header
	settings *Settings
	dialer   *websocket.Dialer

	inbound   chan Message
	send      chan []byte
	reconnect chan struct{}
	// frames queued by Send and not yet handed to the socket
	pending atomic.Int64
}

func NewClient(ctx context.Context, url string, settings *Settings) *Client {
	if settings == nil {
		settings = DefaultSettings()
	}
	cancelCtx, cancel := context.WithCancel(ctx)
	client := &Client{
		ctx:      cancelCtx,
		cancel:   cancel,
		url:      url,
		header:   http.Header{},
		settings: settings,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: settings.HandshakeTimeout,
		},
		inbound:   make(chan Message),
		send:      make(chan []byte, settings.SendBufferSize),
		reconnect: make(chan struct{}, 1),
	}
	go client.run()
	return client
}

// Inbound is closed when the client is closed.
func (c *Client) Inbound() <-chan Message {
	return c.inbound
}

// Send queues frame for the current or next connection.
func (c *Client) Send(frame []byte) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}
	c.pending.Add(1)
	select {
	case <-c.ctx.Done():
		c.pending.Add(-1)
		return c.ctx.Err()
	case c.send <- frame:
		return nil
	case <-time.After(c.settings.WriteTimeout):
		c.pending.Add(-1)
		return ErrSendTimeout
	}
}

// Flush waits up to timeout for queued frames to be written.
func (c *Client) Flush(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for c.pending.Load() > 0 {
		if time.Now().After(deadline) {
			return false
		}
		select {
		case <-c.ctx.Done():
			return false
		case <-time.After(10 * time.Millisecond):
		}
	}
	return true
}

// Reconnect drops the current connection and dials again.
func (c *Client) Reconnect() {
	select {
	case c.reconnect <- struct{}{}:
	default:
	}
}

func (c *Client) Close() {
	c.cancel()
}

func (c *Client) run() {
	defer close(c.inbound)
	defer c.cancel()

	var connection uint64
	for {
		ws, _, err := c.dialer.DialContext(c.ctx, c.url, c.header)
		if err != nil {
			glog.Infof("[t]dial %s error = %s\n", c.url, err)
			if !c.deliver(Message{Kind: KindDisconnected, Connection: connection, Err: err}) {
				return
			}
		} else {
			connection++
			glog.V(1).Infof("[t]connected %s (%d)\n", c.url, connection)
			if !c.deliver(Message{Kind: KindConnected, Connection: connection}) {
				ws.Close()
				return
			}
			err = c.serve(ws, connection)
			if errors.Is(err, errReconnect) {
				// Redial right away; the consumer asked for a fresh snapshot.
				if !c.deliver(Message{Kind: KindDisconnected, Connection: connection, Err: err}) {
					return
				}
				continue
			}
			glog.Infof("[t]connection %d closed = %s\n", connection, err)
			if !c.deliver(Message{Kind: KindDisconnected, Connection: connection, Err: err}) {
				return
			}
		}

		select {
		case <-c.ctx.Done():
			return
		case <-c.reconnect:
		case <-time.After(c.settings.ReconnectDelay):
		}
	}
}

func (c *Client) serve(ws *websocket.Conn, connection uint64) error {
	defer ws.Close()

	handleCtx, handleCancel := context.WithCancelCause(c.ctx)
	defer handleCancel(nil)

	go func() {
		select {
		case <-handleCtx.Done():
		case <-c.reconnect:
			handleCancel(errReconnect)
		}
		// unblocks ReadMessage
		ws.Close()
	}()

	go c.write(handleCtx, handleCancel, ws, connection)

	c.extendReadDeadline(ws)
	ws.SetPongHandler(func(string) error {
		c.extendReadDeadline(ws)
		return nil
	})

	for {
		messageType, message, err := ws.ReadMessage()
		if err != nil {
			if cause := context.Cause(handleCtx); cause != nil {
				return cause
			}
			return err
		}
		c.extendReadDeadline(ws)

		switch messageType {
		case websocket.TextMessage, websocket.BinaryMessage:
			if len(message) == 0 {
				continue
			}
			glog.V(2).Infof("[tr](%d)<- %d bytes\n", connection, len(message))
			if !c.deliver(Message{Kind: KindFrame, Connection: connection, Data: message}) {
				return c.ctx.Err()
			}
		default:
			glog.V(2).Infof("[tr]other=%d (%d)<-\n", messageType, connection)
		}
	}
}

func (c *Client) write(ctx context.Context, cancel context.CancelCauseFunc, ws *websocket.Conn, connection uint64) {
	var ping <-chan time.Time
	if c.settings.PingInterval > 0 {
		ticker := time.NewTicker(c.settings.PingInterval)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-c.send:
			ws.SetWriteDeadline(time.Now().Add(c.settings.WriteTimeout))
			err := ws.WriteMessage(websocket.TextMessage, frame)
			c.pending.Add(-1)
			if err != nil {
				// a websocket write deadline cannot be recovered
				glog.Infof("[ts](%d)-> error = %s\n", connection, err)
				cancel(fmt.Errorf("write failed: %w", err))
				return
			}
			glog.V(2).Infof("[ts](%d)-> %d bytes\n", connection, len(frame))
		case <-ping:
			deadline := time.Now().Add(c.settings.WriteTimeout)
			if err := ws.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				cancel(fmt.Errorf("ping failed: %w", err))
				return
			}
		}
	}
}

func (c *Client) extendReadDeadline(ws *websocket.Conn) {
	if c.settings.ReadTimeout <= 0 {
		return
	}
	ws.SetReadDeadline(time.Now().Add(c.settings.ReadTimeout))
}

func (c *Client) deliver(message Message) bool {
	select {
	case <-c.ctx.Done():
		return false
	case c.inbound <- message:
		return true
	}
}
