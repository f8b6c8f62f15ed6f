package app

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"PosBridge/config"
	"PosBridge/internal/controller/http"
	"PosBridge/internal/controller/http/handlers"
	"PosBridge/internal/dispatch"
	"PosBridge/internal/domain/kitchen"
	"PosBridge/internal/domain/menu"
	"PosBridge/internal/domain/order"
	"PosBridge/internal/external/dispatchapi"
	"PosBridge/internal/external/kafka"
	"PosBridge/internal/external/opensearch"
	"PosBridge/internal/messaging"
	menu_repo "PosBridge/internal/repo/menu"
	order_repo "PosBridge/internal/repo/order"
	"PosBridge/pkg/health"
	"PosBridge/pkg/logger"
	"PosBridge/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	orderRepo := order_repo.NewPgOrderRepo(pool)
	menuRepo := menu_repo.NewPgMenuRepo(pool)

	// Optional dispatch audit sink
	var auditSink order.AuditSink
	if len(cfg.OpensearchUrls) > 0 {
		sink, err := opensearch.NewAuditSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexDispatch)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - opensearch.NewAuditSink: %w", err))
		}
		auditSink = sink
	}

	deliverer := dispatchapi.New(nil)
	dispatcher := order.NewDispatcher(deliverer, orderRepo, auditSink, l)
	syncTrigger := dispatch.NewSyncTrigger(dispatcher)

	var trigger order.DispatchTrigger = syncTrigger
	var kitchenPublisher messaging.Publisher = messaging.NopPublisher{}

	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}

	if cfg.DispatchMode == "kafka" {
		l.Info("Dispatch mode: kafka")
		dispatchPublisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaDispatchTopic)
		defer dispatchPublisher.Close()
		trigger = dispatch.NewAsyncTrigger(dispatchPublisher, l)
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaKitchenTopic)
		defer publisher.Close()
		kitchenPublisher = publisher
	}

	// Services
	orderService := order.NewOrderService(orderRepo, trigger, l)
	kitchenService := kitchen.NewKitchenService(orderRepo, kitchenPublisher, l)
	menuService := menu.NewMenuService(menuRepo, l)

	// Handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	kitchenHandler := handlers.NewKitchenHandler(kitchenService)
	menuHandler := handlers.NewMenuHandler(menuService)

	healthRegistry := health.NewRegistry(checkers...)

	router := http.NewRouter(orderHandler, kitchenHandler, menuHandler, healthRegistry)
	router.SetUp(engine)

	// Apply migrations
	err = ApplyMigrations(cfg.PgURL, MIGRATION_FS)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	// In kafka mode queued dispatch requests are delivered by a consumer
	// worker that runs the inline pipeline.
	if cfg.DispatchMode == "kafka" {
		deliveryService := order.NewOrderService(orderRepo, syncTrigger, l)
		StartDispatchWorker(ctx, l, cfg, deliveryService)
	}

	// Start HTTP server in a goroutine
	go func() {
		l.Info("Starting HTTP server: port=%d", cfg.Port)
		if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			l.Error("HTTP server error: error=%v", err)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	l.Info("Shutting down gracefully...")
}
