package main

import (
	"context"
	"log"

	"zoo-ticketing/config"
	"zoo-ticketing/internal/module/order/handler"
	"zoo-ticketing/internal/module/order/repositories"
	"zoo-ticketing/internal/module/order/usecases"
	"zoo-ticketing/internal/pkg/database"
	"zoo-ticketing/internal/pkg/http"
	log_internal "zoo-ticketing/internal/pkg/log"
	"zoo-ticketing/internal/pkg/messagestream"
	"zoo-ticketing/internal/pkg/middleware"
	router "zoo-ticketing/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	ctx := context.Background()

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "failed to create subscriber", "error", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "failed to create publisher", "error", err)
	}

	orderRepo := repositories.New(db, logger)
	orderUsecase := usecases.New(orderRepo, logger, publisher)
	middleware := &middleware.Middleware{
		Log: logger,
	}

	validator := validator.New()
	orderHandler := &handler.OrderHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   orderUsecase,
	}

	var messageRouters []*message.Router

	if subscriber != nil && publisher != nil {
		orderCreatedRouter, err := messagestream.NewRouter(publisher, "school_order_poisoned", "school_order_created_handler", usecases.TopicOrderCreated, subscriber, orderHandler.ConsumeOrderCreatedQueue)
		if err != nil {
			logger.Error(ctx, "failed to create school_order_created router", "error", err)
		} else {
			messageRouters = append(messageRouters, orderCreatedRouter)
		}
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, orderHandler, middleware)

	return r, messageRouters
}
