// Package mail publishes outbound mail jobs to a RabbitMQ topic exchange.
// Actual SMTP delivery is handled by a separate consumer process; this side
// only guarantees the job reaches the broker.
package mail

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeKind = "topic"

	RoutingKeyBookingConfirmation = "mail.booking.confirmation"
	RoutingKeyContactMessage      = "mail.contact.message"
)

type BookingConfirmation struct {
	BookingID  string    `json:"booking_id"`
	GuestName  string    `json:"guest_name"`
	GuestEmail string    `json:"guest_email"`
	RoomName   string    `json:"room_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalPrice int64     `json:"total_price"`
	From       string    `json:"from"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	To      string `json:"to"`
}

type Publisher struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	from       string
	adminInbox string
}

func NewPublisher(amqpCfg config.AMQPConfig, mailCfg config.MailConfig) (*Publisher, func(), error) {
	conn, err := amqp.Dial(amqpCfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open rabbitmq channel")
	}

	if err := ch.ExchangeDeclare(mailCfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare mail exchange")
	}

	p := &Publisher{
		conn:       conn,
		channel:    ch,
		exchange:   mailCfg.Exchange,
		from:       mailCfg.FromAddress,
		adminInbox: mailCfg.AdminInbox,
	}

	cleanup := func() {
		p.channel.Close()
		p.conn.Close()
	}

	return p, cleanup, nil
}

func (p *Publisher) SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error {
	msg.From = p.from
	return p.publish(ctx, RoutingKeyBookingConfirmation, msg)
}

func (p *Publisher) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	msg.To = p.adminInbox
	return p.publish(ctx, RoutingKeyContactMessage, msg)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal mail payload")
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish mail job")
	}
	return nil
}
