package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/janseva/assistant/internal/events"
)

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
	deadline      bool
	err           error
	closed        bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	_, f.deadline = ctx.Deadline()
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishTurn(t *testing.T) {
	ch := &fakeChannel{}
	p := newWithChannel(ch, "turns")

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	err := p.PublishTurn(context.Background(), events.TurnEvent{
		ConversationID: "c-1",
		Channel:        events.ChannelVoice,
		Language:       "mr",
		Audio:          true,
		At:             at,
	})
	require.NoError(t, err)
	require.Equal(t, "", ch.exchange)
	require.Equal(t, "turns", ch.key)
	require.True(t, ch.deadline)
	require.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	require.Equal(t, "application/json", ch.msg.ContentType)

	var got events.TurnEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &got))
	require.Equal(t, "c-1", got.ConversationID)
	require.Equal(t, events.ChannelVoice, got.Channel)
	require.True(t, got.At.Equal(at))

	require.NoError(t, p.Close())
	require.True(t, ch.closed)
}

func TestPublishTurn_Error(t *testing.T) {
	p := newWithChannel(&fakeChannel{err: errors.New("channel closed")}, "turns")
	err := p.PublishTurn(context.Background(), events.TurnEvent{ConversationID: "c"})
	require.ErrorContains(t, err, "channel closed")
}
