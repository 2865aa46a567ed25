package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps a single catchup response. A client that missed more
// than this receives catchup.overflow and is expected to reload the view
// over REST instead of replaying the backlog.
const catchupLimit = 200

// listenTimeout bounds the LISTEN round-trip taken when a channel gains
// its first subscriber.
const listenTimeout = 10 * time.Second

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries events for catchup. Implemented by EventStore.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// serverMsg is the envelope for server → client control messages. Event
// payloads themselves are forwarded verbatim from NOTIFY.
type serverMsg struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
	ConnID  string `json:"connection_id,omitempty"`
	Message string `json:"message,omitempty"`
	HasMore bool   `json:"has_more,omitempty"`
}

// Hub fans PG notifications out to the dashboard's WebSocket clients.
// One Hub per process; the NotifyListener feeds it and each subscribed
// channel maps to exactly one PG LISTEN.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*wsClient
	// subs carries client pointers directly so Broadcast resolves
	// channel → clients in one pass under the lock.
	subs map[string]map[string]*wsClient

	store        CatchupQuerier
	writeTimeout time.Duration

	listenerMu sync.RWMutex
	listener   *NotifyListener
}

// wsClient is one dashboard connection.
//
// channels is touched only by the goroutine running serve (its read loop
// and deferred cleanup), so it needs no lock. Anything that would mutate
// a wsClient from outside that goroutine must add one first.
type wsClient struct {
	id       string
	conn     *websocket.Conn
	channels map[string]bool
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewHub creates the fan-out hub. writeTimeout bounds each client send.
func NewHub(store CatchupQuerier, writeTimeout time.Duration) *Hub {
	return &Hub{
		clients:      make(map[string]*wsClient),
		subs:         make(map[string]map[string]*wsClient),
		store:        store,
		writeTimeout: writeTimeout,
	}
}

// AttachListener wires in the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup, after both sides exist.
func (h *Hub) AttachListener(l *NotifyListener) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listener = l
}

// HandleConnection runs one WebSocket client until it disconnects. Called
// by the HTTP handler after the upgrade; blocks for the connection's life.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &wsClient{
		id:       uuid.New().String(),
		conn:     conn,
		channels: make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	defer h.drop(c)

	h.push(c, serverMsg{Type: "connection.established", ConnID: c.id})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.id, "error", err)
			continue
		}
		h.route(ctx, c, &msg)
	}
}

// Broadcast forwards an event payload to every client subscribed to the
// channel. The client list is snapshotted under the lock; sends happen
// outside it, since each may take up to writeTimeout.
func (h *Hub) Broadcast(channel string, event []byte) {
	h.mu.Lock()
	targets := make([]*wsClient, 0, len(h.subs[channel]))
	for _, c := range h.subs[channel] {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		if err := h.write(c, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", c.id, "error", err)
		}
	}
}

// ActiveConnections returns the count of connected clients.
func (h *Hub) ActiveConnections() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// subscriberCount is used by tests to poll instead of sleeping.
func (h *Hub) subscriberCount(channel string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[channel])
}

func (h *Hub) route(ctx context.Context, c *wsClient, msg *ClientMessage) {
	if msg.Action != "ping" && msg.Channel == "" {
		h.push(c, serverMsg{Type: "error", Message: msg.Action + " requires a channel"})
		return
	}

	switch msg.Action {
	case "subscribe":
		if err := h.subscribe(c, msg.Channel); err != nil {
			h.push(c, serverMsg{
				Type:    "subscription.error",
				Channel: msg.Channel,
				Message: "failed to subscribe to channel",
			})
			return
		}
		h.push(c, serverMsg{Type: "subscription.confirmed", Channel: msg.Channel})
		// Auto catch-up so a late subscriber starts complete.
		h.catchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		h.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.LastEventID != nil {
			h.catchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		h.push(c, serverMsg{Type: "pong"})
	}
}

// subscribe registers the client on a channel, issuing LISTEN when the
// channel gains its first subscriber. LISTEN completes before subscribe
// returns, so the auto-catchup that follows runs with LISTEN already
// active and no event can fall between the two.
func (h *Hub) subscribe(c *wsClient, channel string) error {
	h.mu.Lock()
	firstSubscriber := h.subs[channel] == nil
	if firstSubscriber {
		h.subs[channel] = make(map[string]*wsClient)
	}
	h.subs[channel][c.id] = c
	h.mu.Unlock()

	if firstSubscriber {
		h.listenerMu.RLock()
		l := h.listener
		h.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				h.evictChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.channels[channel] = true
	return nil
}

// evictChannel tears down a channel after a LISTEN failure and tells
// every affected client except the triggering one (whose subscribe call
// reports the error directly).
//
// Between releasing the lock and LISTEN failing, other clients may have
// joined the channel: they saw it already existed, skipped LISTEN, and got
// subscription.confirmed with no PG LISTEN behind it. A later
// subscription.error is therefore authoritative — clients must discard
// the channel's events and re-subscribe or fall back to REST polling.
func (h *Hub) evictChannel(triggering *wsClient, channel string) {
	h.mu.Lock()
	affected := make([]*wsClient, 0, len(h.subs[channel]))
	for _, c := range h.subs[channel] {
		if c.id != triggering.id {
			affected = append(affected, c)
		}
	}
	delete(h.subs, channel)
	h.mu.Unlock()

	for _, c := range affected {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", c.id, "channel", channel)
		h.push(c, serverMsg{
			Type:    "subscription.error",
			Channel: channel,
			Message: "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes the client from a channel, issuing UNLISTEN when the
// last subscriber leaves. The UNLISTEN goroutine re-checks for a new
// subscriber first, so a rapid unsubscribe/resubscribe cycle does not
// drop the LISTEN out from under the new arrival.
func (h *Hub) unsubscribe(c *wsClient, channel string) {
	h.mu.Lock()
	lastSubscriber := false
	if members, ok := h.subs[channel]; ok {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.subs, channel)
			lastSubscriber = true
		}
	}
	h.mu.Unlock()

	delete(c.channels, channel)

	if !lastSubscriber {
		return
	}
	h.listenerMu.RLock()
	l := h.listener
	h.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		if h.subscriberCount(channel) > 0 {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// catchup replays events since lastEventID to a single client.
func (h *Hub) catchup(ctx context.Context, c *wsClient, channel string, lastEventID int) {
	if h.store == nil {
		return
	}

	// One extra row detects overflow without a count query.
	rows, err := h.store.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}
	truncated := len(rows) > catchupLimit
	if truncated {
		rows = rows[:catchupLimit]
	}

	for _, evt := range rows {
		// db_event_id is only stamped onto the NOTIFY copy at publish
		// time; restore it here from the row ID.
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := h.write(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.id, "error", err)
			return
		}
	}

	if truncated {
		h.push(c, serverMsg{Type: "catchup.overflow", Channel: channel, HasMore: true})
	}
}

// drop removes a disconnected client and all its subscriptions.
func (h *Hub) drop(c *wsClient) {
	for ch := range c.channels {
		h.unsubscribe(c, ch)
	}

	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) push(c *wsClient, msg serverMsg) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.id, "error", err)
		return
	}
	if err := h.write(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.id, "error", err)
	}
}

func (h *Hub) write(c *wsClient, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
