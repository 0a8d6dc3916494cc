package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"workshop/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// Exchange is the durable topic exchange events are published to.
	Exchange = "service_orders"

	statusRoutingKeyPrefix = "service_order.status."
)

// StatusChangedMessage is the JSON body of a status change event.
type StatusChangedMessage struct {
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Source     string    `json:"source"`
	Version    int       `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RoutingKey returns service_order.status.<TARGET>, so consumers can bind to
// "service_order.status.DELIVERED" or "service_order.status.#".
func RoutingKey(event ports.StatusChangedEvent) string {
	return statusRoutingKeyPrefix + event.To.String()
}

type StatusChangePublisher struct {
	conn ChannelOpener
}

func NewStatusChangePublisher(conn ChannelOpener) *StatusChangePublisher {
	return &StatusChangePublisher{conn: conn}
}

func (p *StatusChangePublisher) PublishStatusChanged(ctx context.Context, event ports.StatusChangedEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(StatusChangedMessage{
		OrderID:    event.OrderID.String(),
		Number:     event.Number,
		From:       event.From.String(),
		To:         event.To.String(),
		Source:     event.Source,
		Version:    event.Version,
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(ctx, Exchange, RoutingKey(event), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    fmt.Sprintf("%s:%d", event.OrderID, event.Version),
		Timestamp:    event.OccurredAt.UTC(),
		Type:         "service_order.status_changed",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, ports.StatusChangedEvent) error {
	return nil
}
