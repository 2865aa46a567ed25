package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	// notifyWaitSlice bounds each WaitForNotification call so the pump
	// returns regularly to apply queued LISTEN/UNLISTEN statements.
	notifyWaitSlice = 100 * time.Millisecond

	// redialFloor and redialCeiling bound the reconnect backoff.
	redialFloor   = time.Second
	redialCeiling = 30 * time.Second
)

var errNotConnected = errors.New("listen connection not established")

// channelCmd is a LISTEN or UNLISTEN statement queued for the pump, the
// sole goroutine allowed to touch the pgx connection.
type channelCmd struct {
	stmt string
	done chan error
}

// NotifyListener holds the dedicated connection that feeds the live
// operator feed: per-run channels (run:{id}), the global runs channel and
// the automation channel. Notifications received on any subscribed channel
// are handed to the local Hub for fan-out to WebSocket
// clients.
type NotifyListener struct {
	connString string
	hub        *Hub

	conn   *pgx.Conn
	connMu sync.Mutex

	// channels the listener currently LISTENs on, re-established after a
	// redial.
	channels   map[string]struct{}
	channelsMu sync.RWMutex

	// cmdCh funnels LISTEN/UNLISTEN through the pump, avoiding the
	// "conn busy" race between WaitForNotification and Exec.
	cmdCh   chan channelCmd
	running atomic.Bool

	cancelPump context.CancelFunc
	pumpDone   chan struct{}
}

// NewNotifyListener creates a listener over its own PostgreSQL connection.
func NewNotifyListener(connString string, hub *Hub) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		hub:        hub,
		channels:   make(map[string]struct{}),
		cmdCh:      make(chan channelCmd, 16),
	}
}

// Start dials the LISTEN connection and launches the notification pump.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	pumpCtx, cancel := context.WithCancel(ctx)
	l.cancelPump = cancel
	l.pumpDone = make(chan struct{})
	go func() {
		defer close(l.pumpDone)
		l.pump(pumpCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for a feed channel. Idempotent per channel.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.channelsMu.RLock()
	_, active := l.channels[channel]
	l.channelsMu.RUnlock()
	if active {
		return nil
	}
	if !l.running.Load() {
		return errNotConnected
	}

	quoted := pgx.Identifier{channel}.Sanitize()
	if err := l.enqueue(ctx, "LISTEN "+quoted); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", quoted, err)
	}

	l.channelsMu.Lock()
	l.channels[channel] = struct{}{}
	l.channelsMu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN once the last WebSocket subscriber of a
// channel is gone.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.channelsMu.RLock()
	_, active := l.channels[channel]
	l.channelsMu.RUnlock()
	if !active || !l.running.Load() {
		return nil
	}

	quoted := pgx.Identifier{channel}.Sanitize()
	if err := l.enqueue(ctx, "UNLISTEN "+quoted); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", quoted, err)
	}

	l.channelsMu.Lock()
	delete(l.channels, channel)
	l.channelsMu.Unlock()
	return nil
}

// enqueue hands a statement to the pump and waits for its result.
func (l *NotifyListener) enqueue(ctx context.Context, stmt string) error {
	cmd := channelCmd{stmt: stmt, done: make(chan error, 1)}
	select {
	case l.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pump alternates between applying queued channel commands and waiting for
// notifications, and owns the pgx connection exclusively.
func (l *NotifyListener) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.applyQueued(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()
		if conn == nil {
			l.redial(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitSlice)
		n, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue // Wait slice elapsed; check the command queue.
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.redial(ctx)
			continue
		}

		l.hub.Broadcast(n.Channel, []byte(n.Payload))
	}
}

// applyQueued drains pending LISTEN/UNLISTEN statements.
func (l *NotifyListener) applyQueued(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmdCh:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()
			if conn == nil {
				cmd.done <- errNotConnected
				continue
			}
			_, err := conn.Exec(ctx, cmd.stmt)
			cmd.done <- err
		default:
			return
		}
	}
}

// redial re-establishes the connection with exponential backoff and
// restores every subscribed channel, so feed clients keep receiving events
// across a database failover without resubscribing.
func (l *NotifyListener) redial(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	delay := redialFloor
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", delay)
			delay = min(delay*2, redialCeiling)
			continue
		}
		l.conn = conn

		l.channelsMu.RLock()
		for ch := range l.channels {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.channelsMu.RUnlock()

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop ends the pump, waits for it, then closes the connection. The pump
// must exit before Close to avoid racing WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelPump != nil {
		l.cancelPump()
	}
	if l.pumpDone != nil {
		<-l.pumpDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
