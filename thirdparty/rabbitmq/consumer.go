package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/compose-demos/model"
	"github.com/muhammadheryan/compose-demos/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Deliverer hands a queued code to its final channel (SMS gateway, log, ...).
type Deliverer interface {
	Send(ctx context.Context, msg model.OTPMessage) error
}

type Consumer struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	deliverer Deliverer
}

func NewConsumer(url string, deliverer Deliverer) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:      conn,
		channel:   channel,
		deliverer: deliverer,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		OTPQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var otpMsg model.OTPMessage
	if err := json.Unmarshal(msg.Body, &otpMsg); err != nil {
		logger.Error("[Consumer] failed to unmarshal message", zap.Error(err))
		msg.Ack(false)
		return
	}

	if err := c.deliverer.Send(ctx, otpMsg); err != nil {
		logger.Error("[Consumer] failed to deliver code",
			zap.String("session_id", otpMsg.SessionID),
			zap.Error(err),
		)
		msg.Nack(false, true)
		return
	}

	msg.Ack(false)
	logger.Info("[Consumer] code delivered", zap.String("session_id", otpMsg.SessionID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
