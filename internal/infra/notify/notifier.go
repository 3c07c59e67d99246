// Package notify fans out back-office notifications over Redis pub/sub so
// every admin session sees new bookings, reviews, and contact messages
// without polling the database.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const channelName = "admin.notifications"

type Event struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Summary   string     `json:"summary"`
	EntityID  *uuid.UUID `json:"entity_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Notifier struct {
	client *redis.Client
}

func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification event")
	}
	if err := n.client.Publish(ctx, channelName, body).Err(); err != nil {
		return errs.Wrap(err, "failed to publish notification event")
	}
	return nil
}

// Subscribe opens a dedicated pub/sub connection. The returned Subscription
// must be closed by the caller; closing stops the pump goroutine and releases
// the connection.
func (n *Notifier) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := n.client.Subscribe(ctx, channelName)

	// Confirm the subscription before handing it out.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, errs.Wrap(err, "failed to subscribe to notification channel")
	}

	subCtx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan Event, 16),
		cancel: cancel,
	}

	go sub.pump(subCtx)

	return sub, nil
}

type Subscription struct {
	pubsub *redis.PubSub
	events chan Event
	cancel context.CancelFunc
}

func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) Close() error {
	s.cancel()
	return s.pubsub.Close()
}

func (s *Subscription) pump(ctx context.Context) {
	defer close(s.events)

	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var evt Event
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				slog.Warn("dropping malformed notification event", "error", err.Error())
				continue
			}
			select {
			case s.events <- evt:
			case <-ctx.Done():
				return
			}
		}
	}
}
