package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apiConfig "github.com/roothery/abi-gth-omnia-developer-evaluation/src/api/config"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/usecase"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/infrastructure/controller"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/infrastructure/events"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/infrastructure/persistence"
	sharedConfig "github.com/roothery/abi-gth-omnia-developer-evaluation/src/shared/infrastructure/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := sharedConfig.Load()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		logger.Info("prometheus metrics enabled at /metrics")
	}

	db := connectDB(cfg, logger)
	if db != nil {
		defer db.Close()
	}

	publisher := connectPublisher(cfg, logger)

	v1 := router.Group("/api/v1")

	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	setupSalesModule(v1, db, publisher, logger)

	logger.Info("sales service started", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// connectDB abre la conexión a PostgreSQL. Si la base no responde, el
// servicio arranca igual con el repositorio en memoria.
func connectDB(cfg sharedConfig.Config, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		logger.Warn("could not open database, continuing with in-memory storage", zap.Error(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Warn("database not reachable, continuing with in-memory storage", zap.Error(err))
		db.Close()
		return nil
	}

	logger.Info("database connection established", zap.String("db", cfg.DBName))
	return db
}

// connectPublisher conecta a Redis para eventos de dominio. Si Redis no
// responde, los eventos se descartan.
func connectPublisher(cfg sharedConfig.Config, logger *zap.Logger) port.EventPublisher {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not reachable, domain events disabled", zap.Error(err))
		client.Close()
		return events.NewNoopEventPublisher()
	}

	logger.Info("redis connection established", zap.String("addr", cfg.RedisAddr))
	return events.NewRedisEventPublisher(client, cfg.EventChannelPrefix, logger)
}

// setupSalesModule configura el módulo Sales
func setupSalesModule(router *gin.RouterGroup, db *sql.DB, publisher port.EventPublisher, logger *zap.Logger) {
	var saleRepo port.SaleRepository
	if db != nil {
		saleRepo = persistence.NewSalePostgresRepository(db)
	} else {
		saleRepo = persistence.NewSaleMemoryRepository()
	}

	createSaleUC := usecase.NewCreateSaleUseCase(saleRepo, publisher, logger)
	getSaleUC := usecase.NewGetSaleUseCase(saleRepo)
	listSalesUC := usecase.NewListSalesUseCase(saleRepo)
	updateSaleUC := usecase.NewUpdateSaleUseCase(saleRepo, logger)
	cancelSaleUC := usecase.NewCancelSaleUseCase(saleRepo, publisher, logger)
	deleteSaleUC := usecase.NewDeleteSaleUseCase(saleRepo, publisher, logger)
	createSaleItemUC := usecase.NewCreateSaleItemUseCase(saleRepo, logger)
	getSaleItemUC := usecase.NewGetSaleItemUseCase(saleRepo)
	updateSaleItemUC := usecase.NewUpdateSaleItemUseCase(saleRepo, logger)
	deleteSaleItemUC := usecase.NewDeleteSaleItemUseCase(saleRepo, logger)
	dailyReportUC := usecase.NewDailyReportUseCase(saleRepo)

	saleCtrl := controller.NewSaleController(
		createSaleUC,
		getSaleUC,
		listSalesUC,
		updateSaleUC,
		cancelSaleUC,
		deleteSaleUC,
		createSaleItemUC,
		getSaleItemUC,
		updateSaleItemUC,
		deleteSaleItemUC,
		logger,
	)
	reportCtrl := controller.NewReportController(dailyReportUC, logger)

	saleCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	logger.Info("sales module configured")
}
