package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ikkim/shop-api/internal/app/model"
	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

func receive(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()
	select {
	case msg, ok := <-ch:
		require.True(t, ok, "send channel closed")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestHub_PublishFansOut(t *testing.T) {
	hub := startHub(t)

	first := NewClient(hub, nil, nil)
	second := NewClient(hub, nil, nil)
	hub.Register(first)
	hub.Register(second)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.Publish(service.Event{
		Type:       service.EventItemCreated,
		Item:       &model.Item{ID: 1, Name: "Milk", Price: 1.5},
		OccurredAt: time.Now(),
	})

	for _, client := range []*Client{first, second} {
		var event map[string]interface{}
		require.NoError(t, json.Unmarshal(receive(t, client.Send), &event))
		assert.Equal(t, "item.created", event["type"])
	}
}

func TestHub_TypeFilter(t *testing.T) {
	hub := startHub(t)

	carts := NewClient(hub, nil, []service.EventType{service.EventCartCreated})
	hub.Register(carts)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(service.Event{Type: service.EventItemCreated, Item: &model.Item{ID: 1}})
	hub.Publish(service.Event{Type: service.EventCartCreated, Cart: model.NewCart()})

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(receive(t, carts.Send), &event))
	assert.Equal(t, "cart.created", event["type"])
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := startHub(t)

	client := NewClient(hub, nil, nil)
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	_, ok := <-client.Send
	assert.False(t, ok)
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := startHub(t)

	client := NewClient(hub, nil, nil)
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	for i := 0; i < clientBuffer+1; i++ {
		hub.Publish(service.Event{Type: service.EventCartCreated, Cart: model.NewCart()})
	}

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestParseTypes(t *testing.T) {
	assert.Nil(t, ParseTypes(""))
	assert.Equal(t,
		[]service.EventType{service.EventItemCreated, service.EventCartItemAdded},
		ParseTypes("item.created, cart.item_added,"),
	)
}

func TestHub_ServeWS(t *testing.T) {
	hub := startHub(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r)
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?types=cart.item_added"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	cart := model.NewCart()
	cart.ID = 3
	hub.Publish(service.Event{Type: service.EventCartItemAdded, Cart: cart})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "cart.item_added", event["type"])
	assert.Equal(t, float64(3), event["cart"].(map[string]interface{})["id"])
}
