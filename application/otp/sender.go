package otp

import (
	"context"

	"github.com/muhammadheryan/compose-demos/model"
	"github.com/muhammadheryan/compose-demos/utils/logger"
	"go.uber.org/zap"
)

// LogSender "delivers" codes by logging them so they can be typed in by hand.
type LogSender struct{}

func NewLogSender() LogSender {
	return LogSender{}
}

func (LogSender) Send(_ context.Context, msg model.OTPMessage) error {
	logger.Info("=== OTP DEMO ===",
		zap.String("otp", msg.Code),
		zap.String("sent_to", msg.PhoneNumber),
		zap.String("session_id", msg.SessionID),
	)
	return nil
}
