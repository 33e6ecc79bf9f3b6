package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"cannacommerce/cmd"
	httpin "cannacommerce/internal/adapters/in/http"
	"cannacommerce/internal/adapters/out/postgres/custodyrepo"
	"cannacommerce/internal/adapters/out/postgres/documentrepo"
	"cannacommerce/internal/adapters/out/postgres/inventoryrepo"
	"cannacommerce/internal/adapters/out/postgres/orderrepo"
	"cannacommerce/internal/generated/servers"
	"cannacommerce/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetItemsBelowReorderPointQueryHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&documentrepo.LineDTO{},
		&documentrepo.PurchaseOrderDTO{},
		&documentrepo.AcknowledgmentDTO{},
		&documentrepo.ShipNoticeDTO{},
		&documentrepo.InvoiceDTO{},
		&inventoryrepo.ItemDTO{},
		&inventoryrepo.MovementDTO{},
		&custodyrepo.ChainDTO{},
		&custodyrepo.EventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateSubmitPurchaseOrderCommandHandler(),
		app.CreateSubmitAcknowledgmentCommandHandler(),
		app.CreateSubmitShipNoticeCommandHandler(),
		app.CreateSubmitInvoiceCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateTransferStockCommandHandler(),
		app.CreateRecordCustodyTransferCommandHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
		app.CreateGetItemsBelowReorderPointQueryHandler(),
		app.CreateGetCustodyChainQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
