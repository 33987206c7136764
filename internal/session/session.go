// Package session runs the single goroutine that owns the mirror. Inbound
// frames and user intents are serialized through it, so every event is fully
// applied before the next event or command is looked at.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/hance08/keaview/internal/command"
	"github.com/hance08/keaview/internal/engine"
	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/protocol"
	"github.com/hance08/keaview/internal/selection"
	"github.com/hance08/keaview/internal/store"
	"github.com/hance08/keaview/internal/transport"
)

var ErrClosed = errors.New("session closed")

// Conn is the transport as seen by the session.
type Conn interface {
	Inbound() <-chan transport.Message
	Send(frame []byte) error
	Reconnect()
}

// Recorder receives every inbound frame together with the outcome of
// applying it.
type Recorder interface {
	Record(connection uint64, frame []byte, outcome error) error
}

type NoticeKind int

const (
	NoticeConnected NoticeKind = iota
	NoticeDisconnected
	NoticeDesync
	NoticeSettled
	NoticeDecodeError
)

type Notice struct {
	Kind       NoticeKind
	Connection uint64
	Err        error
}

// Presenter projects the mirror for the user. Both methods run on the session
// goroutine; Render must only read.
type Presenter interface {
	Render(view *Context)
	Notify(notice Notice)
}

// Context is what intents and presenters get to see. It is only valid inside
// the callback it was passed to.
type Context struct {
	Store     *store.Collection
	Selection *selection.Tracker
	Emitter   *command.Emitter
	Summary   model.Summary
	// Change is the event behind this render, nil when the render was not
	// caused by one.
	Change *engine.Change
}

type Settings struct {
	Engine engine.Settings
	// Settle is the quiet period after connecting that counts as "initial
	// snapshot received".
	Settle time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Engine: engine.DefaultSettings(),
		Settle: 300 * time.Millisecond,
	}
}

type intent struct {
	fn   func(*Context) error
	done chan error
}

type Session struct {
	conn      Conn
	codec     protocol.Codec
	engine    *engine.Engine
	emitter   *command.Emitter
	presenter Presenter
	recorder  Recorder
	settings  Settings

	intents chan intent
	settled chan struct{}
	stopped chan struct{}

	connection uint64
	awaiting   bool
	isSettled  bool
}

func New(conn Conn, codec protocol.Codec, presenter Presenter, settings Settings) *Session {
	sel := selection.New()
	eng := engine.New(store.New(), sel, settings.Engine)
	s := &Session{
		conn:      conn,
		codec:     codec,
		engine:    eng,
		presenter: presenter,
		settings:  settings,
		intents:   make(chan intent),
		settled:   make(chan struct{}),
		stopped:   make(chan struct{}),
		awaiting:  true,
	}
	s.emitter = command.NewEmitter(sel, command.SenderFunc(s.sendCommand))
	eng.OnApplied(s.changed)
	return s
}

// changed redraws after every event the engine applied.
func (s *Session) changed(change engine.Change) {
	ctx := s.context()
	ctx.Change = &change
	s.presenter.Render(ctx)
}

// WithRecorder journals every inbound frame. It must be called before Run.
func (s *Session) WithRecorder(r Recorder) *Session {
	s.recorder = r
	return s
}

// Settled is closed once the first snapshot has been received.
func (s *Session) Settled() <-chan struct{} {
	return s.settled
}

// Do runs fn on the session goroutine between two events and returns its
// error.
func (s *Session) Do(ctx context.Context, fn func(*Context) error) error {
	in := intent{fn: fn, done: make(chan error, 1)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stopped:
		return ErrClosed
	case s.intents <- in:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-in.done:
		return err
	}
}

// Run processes frames and intents until ctx is done or the transport closes.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.stopped)

	inbound := s.conn.Inbound()
	settle := time.NewTimer(s.settings.Settle)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case message, ok := <-inbound:
			if !ok {
				return ErrClosed
			}
			if s.handle(message) {
				settle.Reset(s.settings.Settle)
			}

		case in := <-s.intents:
			err := in.fn(s.context())
			in.done <- err
			s.presenter.Render(s.context())

		case <-settle.C:
			if !s.isSettled && !s.awaiting {
				s.isSettled = true
				close(s.settled)
				s.presenter.Notify(Notice{Kind: NoticeSettled, Connection: s.connection})
			}
		}
	}
}

// handle applies one transport message and reports whether the settle timer
// should restart.
func (s *Session) handle(message transport.Message) bool {
	switch message.Kind {
	case transport.KindConnected:
		// The server replays its full state to every new connection.
		s.engine.Reset()
		s.connection = message.Connection
		s.awaiting = false
		s.presenter.Notify(Notice{Kind: NoticeConnected, Connection: message.Connection})
		s.presenter.Render(s.context())
		return true

	case transport.KindDisconnected:
		if message.Connection == s.connection {
			s.awaiting = true
		}
		s.presenter.Notify(Notice{Kind: NoticeDisconnected, Connection: message.Connection, Err: message.Err})
		return false

	case transport.KindFrame:
		if s.awaiting || message.Connection != s.connection {
			glog.V(2).Infof("[session]drop stale frame from connection %d\n", message.Connection)
			return false
		}
		err := s.apply(message.Data)
		if s.recorder != nil {
			if recErr := s.recorder.Record(message.Connection, message.Data, err); recErr != nil {
				glog.Warningf("[session]journal error = %s\n", recErr)
			}
		}
		var desync *engine.DesyncError
		if errors.As(err, &desync) {
			s.resync(desync)
			return false
		}
		return true
	}
	return false
}

func (s *Session) apply(frame []byte) error {
	event, err := s.codec.DecodeEvent(frame)
	if err != nil {
		glog.Infof("[session]drop undecodable frame = %s\n", err)
		s.presenter.Notify(Notice{Kind: NoticeDecodeError, Connection: s.connection, Err: err})
		return err
	}
	return s.engine.Apply(event)
}

// resync throws the corrupted mirror away and asks for a new connection, whose
// snapshot rebuilds it.
func (s *Session) resync(desync *engine.DesyncError) {
	glog.Warningf("[session]connection %d out of sync, reloading = %s\n", s.connection, desync)
	s.presenter.Notify(Notice{Kind: NoticeDesync, Connection: s.connection, Err: desync})
	s.engine.Reset()
	s.awaiting = true
	s.presenter.Render(s.context())
	s.conn.Reconnect()
}

func (s *Session) sendCommand(cmd protocol.Command) error {
	frame, err := s.codec.EncodeCommand(cmd)
	if err != nil {
		return err
	}
	if err := s.conn.Send(frame); err != nil {
		return fmt.Errorf("transport: %w", err)
	}
	return nil
}

func (s *Session) context() *Context {
	return &Context{
		Store:     s.engine.Store(),
		Selection: s.engine.Selection(),
		Emitter:   s.emitter,
		Summary:   s.engine.Summary(),
	}
}
