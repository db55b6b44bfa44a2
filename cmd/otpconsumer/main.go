package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/compose-demos/application/otp"
	"github.com/muhammadheryan/compose-demos/cmd/config"
	"github.com/muhammadheryan/compose-demos/thirdparty/rabbitmq"
	"github.com/muhammadheryan/compose-demos/utils/logger"
	"go.uber.org/zap"
)

// otpconsumer drains the code delivery queue and "delivers" each code by
// logging it, standing in for an SMS gateway.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg.GetRabbitMQURL(), otp.NewLogSender())
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("OTP consumer running", zap.String("queue", rabbitmq.OTPQueue))
	<-ctx.Done()
	logger.Info("OTP consumer stopped")
}
