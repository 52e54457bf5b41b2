package nostr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	readLimit    = 16 << 20
	writeTimeout = 10 * time.Second
)

// Relay is one websocket connection to a relay. A single goroutine reads
// frames; writes are serialized.
type Relay struct {
	url    string
	conn   *websocket.Conn
	logger ports.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	subs    map[string]*subscription
	pending map[string]chan message
	err     error
	done    chan struct{}
}

type subscription struct {
	mu     sync.Mutex
	events []*Event
	once   sync.Once
	err    error
	done   chan struct{}
}

func (s *subscription) add(ev *Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *subscription) finish(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

func (s *subscription) collected() []*Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events
}

// DialRelay opens a connection to url.
func DialRelay(ctx context.Context, url string, timeout time.Duration, logger ports.Logger) (*Relay, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
	}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRelayDialFailed.Error()), "relay", url)
	}
	conn.SetReadLimit(readLimit)

	r := &Relay{
		url:     url,
		conn:    conn,
		logger:  logger,
		subs:    make(map[string]*subscription),
		pending: make(map[string]chan message),
		done:    make(chan struct{}),
	}
	go r.readLoop()
	return r, nil
}

// URL returns the relay address.
func (r *Relay) URL() string {
	return r.url
}

// Closed reports whether the connection has shut down.
func (r *Relay) Closed() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Close tears down the connection.
func (r *Relay) Close() error {
	r.writeMu.Lock()
	_ = r.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	r.writeMu.Unlock()
	err := r.conn.Close()
	<-r.done
	return err
}

// Query sends a REQ and collects events until EOSE.
func (r *Relay) Query(ctx context.Context, filters ...Filter) ([]*Event, error) {
	subID := uuid.NewString()
	sub := &subscription{done: make(chan struct{})}

	r.mu.Lock()
	if r.Closed() {
		r.mu.Unlock()
		return nil, r.closedError()
	}
	r.subs[subID] = sub
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.subs, subID)
		r.mu.Unlock()
	}()

	frame, err := encodeReq(subID, filters)
	if err != nil {
		return nil, err
	}
	if err := r.write(frame); err != nil {
		return nil, err
	}

	select {
	case <-sub.done:
	case <-ctx.Done():
		r.unsubscribe(subID)
		return nil, ctx.Err()
	}
	if sub.err != nil {
		return nil, sub.err
	}
	r.unsubscribe(subID)
	return sub.collected(), nil
}

// Publish sends ev and waits for the relay's OK.
func (r *Relay) Publish(ctx context.Context, ev *Event) error {
	ack := make(chan message, 1)

	r.mu.Lock()
	if r.Closed() {
		r.mu.Unlock()
		return r.closedError()
	}
	r.pending[ev.ID] = ack
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.pending, ev.ID)
		r.mu.Unlock()
	}()

	frame, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	if err := r.write(frame); err != nil {
		return err
	}

	select {
	case msg := <-ack:
		if !msg.OK {
			return errors.Join(domain.ErrRelayRejected, fmt.Errorf("relay %s: %s", r.url, msg.Text))
		}
		return nil
	case <-r.done:
		return r.closedError()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) unsubscribe(subID string) {
	frame, err := encodeClose(subID)
	if err != nil {
		return
	}
	_ = r.write(frame)
}

func (r *Relay) write(frame []byte) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if r.Closed() {
		return r.closedError()
	}
	_ = r.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := r.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRelayClosed.Error()), "relay", r.url)
	}
	return nil
}

func (r *Relay) closedError() error {
	r.mu.Lock()
	cause := r.err
	r.mu.Unlock()
	if cause == nil {
		return zerr.With(domain.ErrRelayClosed, "relay", r.url)
	}
	return errors.Join(domain.ErrRelayClosed, zerr.With(cause, "relay", r.url))
}

func (r *Relay) readLoop() {
	for {
		_, data, err := r.conn.ReadMessage()
		if err != nil {
			r.shutdown(err)
			return
		}

		msg, err := decodeMessage(data)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("relay %s: %v", r.url, err))
			continue
		}
		r.dispatch(msg)
	}
}

func (r *Relay) dispatch(msg message) {
	switch msg.Label {
	case labelEvent:
		r.mu.Lock()
		sub := r.subs[msg.SubID]
		r.mu.Unlock()
		if sub == nil {
			return
		}
		if err := msg.Event.Verify(); err != nil {
			r.logger.Warn(fmt.Sprintf("relay %s: dropping event: %v", r.url, err))
			return
		}
		sub.add(msg.Event)

	case labelEOSE:
		r.mu.Lock()
		sub := r.subs[msg.SubID]
		r.mu.Unlock()
		if sub != nil {
			sub.finish(nil)
		}

	case labelClosed:
		r.mu.Lock()
		sub := r.subs[msg.SubID]
		r.mu.Unlock()
		if sub != nil {
			sub.finish(errors.Join(domain.ErrRelaySubscriptionClosed, fmt.Errorf("relay %s: %s", r.url, msg.Text)))
		}

	case labelOK:
		r.mu.Lock()
		ack := r.pending[msg.EventID]
		r.mu.Unlock()
		if ack != nil {
			select {
			case ack <- msg:
			default:
			}
		}

	case labelNotice:
		r.logger.Info(fmt.Sprintf("relay %s notice: %s", r.url, msg.Text))
	}
}

func (r *Relay) shutdown(cause error) {
	r.mu.Lock()
	if !websocket.IsCloseError(cause, websocket.CloseNormalClosure) {
		r.err = cause
	}
	subs := r.subs
	r.subs = make(map[string]*subscription)
	close(r.done)
	r.mu.Unlock()

	for _, sub := range subs {
		sub.finish(r.closedError())
	}
}
