package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/compose-demos/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	OTPExchange   = "otp_delivery_exchange"
	OTPQueue      = "otp_delivery_queue"
	OTPRoutingKey = "otp_delivery"
)

// Publisher puts issued codes on the delivery queue. It satisfies otp.Sender.
type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

// dial opens a channel and declares the exchange, queue and binding used by
// both sides.
func dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		OTPExchange, // name
		"direct",    // type
		true,        // durable
		false,       // auto-delete
		false,       // internal
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	_, err = channel.QueueDeclare(
		OTPQueue, // name
		true,     // durable
		false,    // auto-delete
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	err = channel.QueueBind(
		OTPQueue,      // queue name
		OTPRoutingKey, // routing key
		OTPExchange,   // exchange
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}

func (p *Publisher) Send(ctx context.Context, msg model.OTPMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		OTPExchange,   // exchange
		OTPRoutingKey, // routing key
		false,         // mandatory
		false,         // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   msg.IssuedAt,
			Body:        body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
