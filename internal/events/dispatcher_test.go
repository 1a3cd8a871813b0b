package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherRunsAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(TicketMessageAdded, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.AggregateID)
		return errors.New("boom")
	})
	d.Subscribe(TicketMessageAdded, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.AggregateID)
		return nil
	})

	err := d.Publish(context.Background(), New(TicketMessageAdded, "1", nil))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []string{"first:1", "second:1"}, calls)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), New(TicketStatusChanged, "2", nil)))
}
