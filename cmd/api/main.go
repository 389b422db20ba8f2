package main

import (
	"oms/internal/config"
	"oms/internal/domain/model"
	"oms/internal/graph"
	"oms/internal/handler"
	"oms/internal/infra/db"
	infraRepo "oms/internal/infra/repository"
	"oms/internal/jobs"
	"oms/internal/server"
	"oms/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	//.envはローカル開発用。無ければ環境変数だけで動く
	_ = godotenv.Load()

	//金額は数値のままJSONに出す
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Retailer{},
		&model.Product{},
		&model.Order{},
		&model.OrderLine{},
		&model.Shipment{},
		&model.InventoryAdjustment{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	retailerRepo := infraRepo.NewRetailerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderLineRepo := infraRepo.NewOrderLineGormRepository(gormDB)
	shipmentRepo := infraRepo.NewShipmentGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	inventoryUC := usecase.NewInventoryUsecase(txManager, productRepo, inventoryRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, retailerRepo)
	shipmentUC := usecase.NewShipmentUsecase(txManager, shipmentRepo, orderRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	retailerUC := usecase.NewRetailerUsecase(retailerRepo)

	//GraphQLスキーマ
	resolver := graph.NewResolver(
		retailerRepo, productRepo, orderRepo, orderLineRepo, shipmentRepo, inventoryRepo,
		inventoryUC, orderUC, productUC, retailerUC,
	)
	schema, err := resolver.Schema()
	if err != nil {
		logger.Fatal("graphql schema build failed", zap.Error(err))
	}

	//定期ジョブ（SPSポーリング）
	scheduler := jobs.NewScheduler(logger)
	if err := scheduler.Add(cfg.EDIPollInterval, jobs.NewEDISyncJob(orderRepo, logger)); err != nil {
		logger.Fatal("scheduler setup failed", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	e := server.New(cfg, logger,
		handler.NewOrderHandler(orderUC),
		handler.NewProductHandler(productUC),
		handler.NewRetailerHandler(retailerUC),
		handler.NewShipmentHandler(shipmentUC),
		handler.NewInventoryHandler(inventoryUC),
		graph.NewHandler(schema),
	)

	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.GoEnv == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
