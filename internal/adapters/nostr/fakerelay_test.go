package nostr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"go.trai.ch/degrees/internal/adapters/nostr"
)

// fakeRelay is an in-memory relay speaking the subset of NIP-01 the client uses.
type fakeRelay struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	events   []*nostr.Event
	reqs     [][]json.RawMessage
	received []*nostr.Event
	reject   string
	closeSub string
	garbage  bool
	conns    []*websocket.Conn
}

func newFakeRelay(t *testing.T, events ...*nostr.Event) *fakeRelay {
	t.Helper()
	r := &fakeRelay{t: t, events: events}
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		r.mu.Lock()
		r.conns = append(r.conns, conn)
		r.mu.Unlock()
		r.serve(conn)
	}))
	t.Cleanup(r.server.Close)
	return r
}

func (r *fakeRelay) URL() string {
	return "ws" + strings.TrimPrefix(r.server.URL, "http")
}

func (r *fakeRelay) Requests() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reqs)
}

func (r *fakeRelay) Received() []*nostr.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*nostr.Event(nil), r.received...)
}

// Configure changes the relay behaviour under its lock.
func (r *fakeRelay) Configure(fn func(r *fakeRelay)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r)
}

// Drop closes every open client connection.
func (r *fakeRelay) Drop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.conns {
		_ = c.Close()
	}
	r.conns = nil
}

func (r *fakeRelay) serve(conn *websocket.Conn) {
	var writeMu sync.Mutex
	send := func(v ...any) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.WriteJSON(v)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var frame []json.RawMessage
		if err := json.Unmarshal(data, &frame); err != nil || len(frame) < 2 {
			continue
		}
		var label string
		_ = json.Unmarshal(frame[0], &label)

		switch label {
		case "REQ":
			var subID string
			_ = json.Unmarshal(frame[1], &subID)

			r.mu.Lock()
			r.reqs = append(r.reqs, frame)
			closeSub, garbage := r.closeSub, r.garbage
			matched := r.match(frame[2:])
			r.mu.Unlock()

			if closeSub != "" {
				send("CLOSED", subID, closeSub)
				continue
			}
			if garbage {
				writeMu.Lock()
				_ = conn.WriteMessage(websocket.TextMessage, []byte(`["EVENT",`))
				writeMu.Unlock()
			}
			send("NOTICE", "hello")
			for _, ev := range matched {
				send("EVENT", subID, ev)
			}
			send("EOSE", subID)

		case "EVENT":
			var ev nostr.Event
			if err := json.Unmarshal(frame[1], &ev); err != nil {
				continue
			}
			r.mu.Lock()
			reject := r.reject
			if reject == "" {
				r.received = append(r.received, &ev)
				r.events = append(r.events, &ev)
			}
			r.mu.Unlock()
			send("OK", ev.ID, reject == "", reject)
		}
	}
}

func (r *fakeRelay) match(raw []json.RawMessage) []*nostr.Event {
	var out []*nostr.Event
	for _, ev := range r.events {
		for _, fr := range raw {
			if decodeFilter(r.t, fr).Matches(ev) {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}

func decodeFilter(t *testing.T, raw json.RawMessage) nostr.Filter {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Errorf("bad filter: %v", err)
		return nostr.Filter{}
	}
	f := nostr.Filter{Tags: map[string][]string{}}
	for k, v := range m {
		switch {
		case k == "ids":
			_ = json.Unmarshal(v, &f.IDs)
		case k == "authors":
			_ = json.Unmarshal(v, &f.Authors)
		case k == "kinds":
			_ = json.Unmarshal(v, &f.Kinds)
		case k == "since":
			_ = json.Unmarshal(v, &f.Since)
		case k == "until":
			_ = json.Unmarshal(v, &f.Until)
		case k == "limit":
			_ = json.Unmarshal(v, &f.Limit)
		case strings.HasPrefix(k, "#"):
			var values []string
			_ = json.Unmarshal(v, &values)
			f.Tags[k[1:]] = values
		}
	}
	return f
}
