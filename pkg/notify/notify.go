// Package notify publishes row-change events of jobs and crawls over Redis
// pub/sub so that dashboards can follow progress without polling the store.
package notify

import (
	"context"
	"seoaudit/pkg/logger"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const subscriptionBuffer = 16

// Publisher publishes and subscribes to row-change events. A nil *Publisher is
// valid and publishes nothing.
type Publisher struct {
	client redis.UniversalClient
	prefix string
}

// New returns a Publisher using channels named "<prefix>:<table>:<id>".
func New(client redis.UniversalClient, prefix string) *Publisher {
	if client == nil {
		return nil
	}

	return &Publisher{client: client, prefix: prefix}
}

// Channel returns the channel name of a row.
func (p *Publisher) Channel(table, id string) string {
	return p.prefix + ":" + table + ":" + id
}

// Publish sends ev to the channel of its row.
func (p *Publisher) Publish(ctx context.Context, ev Event) error {
	if p == nil {
		return nil
	}

	var enc jx.Encoder
	ev.Encode(&enc)
	if err := p.client.Publish(ctx, p.Channel(ev.Table, ev.ID), enc.Bytes()).Err(); err != nil {
		return errors.Wrap(err, "publish event")
	}

	return nil
}

// PublishLogged publishes ev and only logs failures. Notifications are best
// effort and never fail the write they describe.
func (p *Publisher) PublishLogged(ctx context.Context, ev Event) {
	if err := p.Publish(ctx, ev); err != nil {
		logger.Warn(ctx, "could not publish row change",
			zap.String("table", ev.Table),
			zap.String("id", ev.ID),
			zap.Error(err))
	}
}

// Subscribe streams the events of one row until ctx is done or the returned
// cleanup function is called. Undecodable messages are logged and dropped.
func (p *Publisher) Subscribe(ctx context.Context, table, id string) (<-chan Event, func(), error) {
	if p == nil {
		return nil, nil, errors.New("notifications are not configured")
	}

	sub := p.client.Subscribe(ctx, p.Channel(table, id))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, nil, errors.Wrap(err, "subscribe")
	}

	ctx, cancel := context.WithCancel(ctx)
	events := make(chan Event, subscriptionBuffer)
	go func() {
		defer close(events)
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var ev Event
				if err := ev.Decode(jx.DecodeStr(msg.Payload)); err != nil {
					logger.Warn(ctx, "dropping undecodable event", zap.String("channel", msg.Channel), zap.Error(err))

					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, func() {
		cancel()
		_ = sub.Close()
	}, nil
}
