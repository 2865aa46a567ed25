package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatchupStore struct {
	events []CatchupEvent
}

func (s *stubCatchupStore) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if limit > 0 && len(s.events) > limit {
		return s.events[:limit], nil
	}
	return s.events, nil
}

func startHub(t *testing.T, store CatchupQuerier) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(store, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)
	return hub, server
}

func dialHub(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func recvJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func sendJSON(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestHub_HandshakeAndPing(t *testing.T) {
	hub, server := startHub(t, &stubCatchupStore{})
	conn := dialHub(t, server)

	hello := recvJSON(t, conn)
	assert.Equal(t, "connection.established", hello["type"])
	assert.NotEmpty(t, hello["connection_id"])

	sendJSON(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", recvJSON(t, conn)["type"])
	assert.Equal(t, 1, hub.ActiveConnections())
}

func TestHub_BroadcastReachesSubscribersOnly(t *testing.T) {
	hub, server := startHub(t, &stubCatchupStore{})
	subscriber := dialHub(t, server)
	bystander := dialHub(t, server)
	recvJSON(t, subscriber)
	recvJSON(t, bystander)

	channel := RunChannel("run-42")
	sendJSON(t, subscriber, ClientMessage{Action: "subscribe", Channel: channel})
	confirm := recvJSON(t, subscriber)
	assert.Equal(t, "subscription.confirmed", confirm["type"])
	assert.Equal(t, channel, confirm["channel"])

	require.Eventually(t, func() bool { return hub.subscriberCount(channel) == 1 },
		time.Second, 10*time.Millisecond)

	hub.Broadcast(channel, []byte(`{"type":"run.status","status":"running"}`))

	got := recvJSON(t, subscriber)
	assert.Equal(t, "run.status", got["type"])

	// The bystander saw only its handshake; a ping round-trip proves no
	// broadcast is queued ahead of the pong.
	sendJSON(t, bystander, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", recvJSON(t, bystander)["type"])
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub, server := startHub(t, &stubCatchupStore{})
	conn := dialHub(t, server)
	recvJSON(t, conn)

	sendJSON(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalRunsChannel})
	recvJSON(t, conn)
	require.Eventually(t, func() bool { return hub.subscriberCount(GlobalRunsChannel) == 1 },
		time.Second, 10*time.Millisecond)

	sendJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: GlobalRunsChannel})
	require.Eventually(t, func() bool { return hub.subscriberCount(GlobalRunsChannel) == 0 },
		time.Second, 10*time.Millisecond)

	hub.Broadcast(GlobalRunsChannel, []byte(`{"type":"run.status"}`))

	sendJSON(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", recvJSON(t, conn)["type"])
}

func TestHub_SubscribeReplaysCatchup(t *testing.T) {
	store := &stubCatchupStore{events: []CatchupEvent{
		{ID: 7, Payload: map[string]interface{}{"type": "run.status", "status": "completed"}},
	}}
	_, server := startHub(t, store)
	conn := dialHub(t, server)
	recvJSON(t, conn)

	sendJSON(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalRunsChannel})
	recvJSON(t, conn) // subscription.confirmed

	replayed := recvJSON(t, conn)
	assert.Equal(t, "run.status", replayed["type"])
	assert.EqualValues(t, 7, replayed["db_event_id"], "row id restored onto the replayed payload")
}

func TestHub_SubscribeRequiresChannel(t *testing.T) {
	_, server := startHub(t, &stubCatchupStore{})
	conn := dialHub(t, server)
	recvJSON(t, conn)

	sendJSON(t, conn, ClientMessage{Action: "subscribe"})
	msg := recvJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestHub_DisconnectDropsSubscriptions(t *testing.T) {
	hub, server := startHub(t, &stubCatchupStore{})
	conn := dialHub(t, server)
	recvJSON(t, conn)

	sendJSON(t, conn, ClientMessage{Action: "subscribe", Channel: AutomationChannel})
	recvJSON(t, conn)
	require.Eventually(t, func() bool { return hub.subscriberCount(AutomationChannel) == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return hub.ActiveConnections() == 0 && hub.subscriberCount(AutomationChannel) == 0
	}, time.Second, 10*time.Millisecond)
}
