package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greeniecart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	var pushed PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&pushed))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(server.URL, logger)

	event := &service.OrderPlacedEvent{
		RequestID: "req-1",
		OrderID:   "order-42",
		UserID:    "user-7",
		Total:     199.5,
		ItemCount: 3,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))

	assert.Equal(t, "projects/local/subscriptions/order-sub", pushed.Subscription)
	assert.Equal(t, "order-42", pushed.Message.MessageID)
	assert.Equal(t, "order-42", pushed.Message.Attributes["order_id"])
	assert.Equal(t, "user-7", pushed.Message.Attributes["user_id"])
	assert.Equal(t, "req-1", pushed.Message.Attributes["request_id"])

	// The envelope data is the base64-encoded event payload.
	raw, err := base64.StdEncoding.DecodeString(pushed.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, event.Total, decoded.Total)
	assert.Equal(t, event.ItemCount, decoded.ItemCount)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(server.URL, logger)

	err := publisher.PublishOrderPlaced(context.Background(), &service.OrderPlacedEvent{OrderID: "order-42"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}
