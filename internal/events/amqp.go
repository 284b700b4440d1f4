package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const closeTimeout = 5 * time.Second

// AMQPPublisher sends events to a durable queue over a single connection,
// redialing when the broker has closed it. One publish uses the channel at a
// time; waiting for it and for the broker both end with the caller's context.
type AMQPPublisher struct {
	url string

	slot chan struct{}
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		url:  url,
		slot: make(chan struct{}, 1),
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq: dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		BookingConfirmedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("rabbitmq: queue declare failed: %w", err)
	}

	p.conn = conn
	p.ch = ch

	return nil
}

func (p *AMQPPublisher) PublishBookingConfirmed(ctx context.Context, booking *domain.Booking, show *domain.Show) error {
	body, err := json.Marshal(NewBookingConfirmedEvent(booking, show))
	if err != nil {
		return err
	}

	select {
	case p.slot <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("rabbitmq: publish not started: %w", ctx.Err())
	}

	// The broker may block a write indefinitely under flow control, so the
	// caller stops waiting at its deadline and the write frees the slot later.
	done := make(chan error, 1)
	go func() {
		defer func() { <-p.slot }()
		done <- p.publish(ctx, booking.Reference, body)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("rabbitmq: publish timed out: %w", ctx.Err())
	}
}

func (p *AMQPPublisher) publish(ctx context.Context, messageID string, body []byte) error {
	if p.conn == nil || p.conn.IsClosed() || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	err := p.ch.PublishWithContext(ctx,
		"", // default exchange
		BookingConfirmedQueue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			MessageId:    messageID,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}

	return nil
}

// Close waits up to closeTimeout for an in-flight publish. A write still stuck
// after that is failed by closing the connection under it.
func (p *AMQPPublisher) Close() error {
	select {
	case p.slot <- struct{}{}:
		defer func() { <-p.slot }()
	case <-time.After(closeTimeout):
	}

	conn := p.conn
	if conn == nil {
		return nil
	}

	return conn.Close()
}
