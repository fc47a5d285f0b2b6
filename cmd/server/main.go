package main // Entry point package

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ValenJ7/Sistema-Boliche/internal/catalog"
	"github.com/ValenJ7/Sistema-Boliche/internal/clock"
	"github.com/ValenJ7/Sistema-Boliche/internal/config"
	"github.com/ValenJ7/Sistema-Boliche/internal/database"
	"github.com/ValenJ7/Sistema-Boliche/internal/handler"
	"github.com/ValenJ7/Sistema-Boliche/internal/queue"
	"github.com/ValenJ7/Sistema-Boliche/internal/repository"
	"github.com/ValenJ7/Sistema-Boliche/internal/router"
	"github.com/ValenJ7/Sistema-Boliche/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env always wins

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("database migrate: %v", err)
	}
	cancel()

	cat, err := catalog.Load(cfg.CatalogSpec)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Repositories.
	eventRepo := repository.NewEventRepo(db)
	saleRepo := repository.NewSaleBatchRepo(db)
	drinkRepo := repository.NewDrinkRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	// Services.
	salesSvc := service.NewSalesService(eventRepo, saleRepo, cat, clock.System(), logger)
	summarySvc := service.NewSummaryService(drinkRepo, saleRepo, logger)

	// Handlers.
	authH := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	eventH := handler.NewEventHandler(eventRepo)
	salesH := handler.NewSalesHandler(salesSvc, eventRepo, drinkRepo)
	salesH.Publish = queue.PublishSaleRecorded
	reportH := handler.NewReportHandler(summarySvc)

	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()

	// Background journal consumer.  It owns its reconnect loop, so a
	// broker outage never takes the HTTP server down with it.
	go func() {
		if err := queue.StartSalesConsumer(); err != nil {
			log.Printf("sales consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterEvents(e, eventH, cfg.JWTSecret)
	router.RegisterSales(e, salesH, cfg.JWTSecret)
	router.RegisterReports(e, reportH, cacheCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
