package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	authapp "github.com/muhammadheryan/compose-demos/application/auth"
	calculatorapp "github.com/muhammadheryan/compose-demos/application/calculator"
	currencyapp "github.com/muhammadheryan/compose-demos/application/currency"
	diceapp "github.com/muhammadheryan/compose-demos/application/dice"
	greetingapp "github.com/muhammadheryan/compose-demos/application/greeting"
	"github.com/muhammadheryan/compose-demos/application/otp"
	taskapp "github.com/muhammadheryan/compose-demos/application/task"
	"github.com/muhammadheryan/compose-demos/cmd/config"
	"github.com/muhammadheryan/compose-demos/cmd/database"
	redisclient "github.com/muhammadheryan/compose-demos/cmd/redis"
	_ "github.com/muhammadheryan/compose-demos/docs"
	redisRepo "github.com/muhammadheryan/compose-demos/repository/redis"
	sessionRepo "github.com/muhammadheryan/compose-demos/repository/session"
	taskRepo "github.com/muhammadheryan/compose-demos/repository/task"
	"github.com/muhammadheryan/compose-demos/thirdparty/rabbitmq"
	"github.com/muhammadheryan/compose-demos/transport"
	"github.com/muhammadheryan/compose-demos/utils/logger"
	"go.uber.org/zap"
)

// @title COMPOSE DEMOS API
// @version 1.0
// @description Sign-up/login flow, task manager and small demo apps
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the task database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("err open db", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()

	// Flow sessions live in memory unless Redis is enabled
	sessions := sessionRepo.NewMemoryRepository()
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		sessions = redisRepo.NewRepository()
	}

	// Codes are logged unless RabbitMQ is enabled
	var sender otp.Sender = otp.NewLogSender()
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.GetRabbitMQURL())
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()
		sender = publisher
	}
	backend := otp.NewSimulatedBackend(otp.NewRandomGenerator(), sender, cfg.OTP.VerifyDelay)

	// Initialize repositories
	TaskRepo := taskRepo.NewTaskRepository(db)

	// Initialize application layers
	handler := &transport.RestHandler{
		AuthApp:       authapp.NewAuthApp(cfg, sessions, backend),
		TaskApp:       taskapp.NewTaskApp(TaskRepo),
		CalculatorApp: calculatorapp.NewCalculatorApp(),
		CurrencyApp:   currencyapp.NewCurrencyApp(),
		DiceApp:       diceapp.NewDiceApp(),
		GreetingApp:   greetingapp.NewGreetingApp(),
	}

	httpTransport := transport.NewTransport(handler, transport.Options{
		InternalAPIKey: cfg.Internal.APIKey,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("err shutdown server", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
}
