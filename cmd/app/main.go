package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"brickmarket/cmd"
	_ "brickmarket/docs"
	httpadapter "brickmarket/internal/adapters/in/http"
	"brickmarket/internal/adapters/out/postgres/historyrepo"
	"brickmarket/internal/adapters/out/postgres/orderrepo"
	"brickmarket/internal/jobs"
	"brickmarket/internal/pkg/idempotency"
	"brickmarket/internal/pkg/logging"
	"brickmarket/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// submissionTTL is how long a checkout idempotency key stays reserved.
const submissionTTL = 24 * time.Hour

//	@title			Brickmarket Order Verification API
//	@version		1.0
//	@description	Checkout, verification workflow and payment tracking for marketplace orders. Requests carry the authenticated user in the X-User-Id and X-User-Role headers.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {
	configs := getConfigs()

	logger := logging.New(configs.LogLevel)

	gormDB := mustConnectDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB)

	checkoutHandler, err := root.CreateCheckoutCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create checkout handler: %v", err)
	}

	server := httpadapter.NewServer(
		checkoutHandler,
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateChangePaymentStatusCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetOrderDetailsQueryHandler(),
		metrics.NewWorkflowMetrics(),
		createSubmissionStore(configs),
		logger,
	)

	reminderAge, err := time.ParseDuration(configs.ReminderAge)
	if err != nil {
		log.Fatalf("Invalid REMINDER_AGE: %v", err)
	}

	jobManager, err := jobs.NewJobManager(
		root.CreateGetOverdueVerificationOrdersQueryHandler(),
		reminderAge,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(server, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		DeliveryCharge: goDotEnvVariable("DELIVERY_CHARGE"),
		ReminderAge:    goDotEnvVariable("REMINDER_AGE"),
		RedisAddr:      goDotEnvVariable("REDIS_ADDR"),
		LogLevel:       goDotEnvVariable("LOG_LEVEL"),
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
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&historyrepo.HistoryEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// createSubmissionStore wires duplicate checkout detection when REDIS_ADDR is
// configured. An empty address disables it.
func createSubmissionStore(configs cmd.Config) *idempotency.Store {
	if configs.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	return idempotency.NewStore(rdb, submissionTTL)
}

func startWebServer(server *httpadapter.Server, logger *slog.Logger, port string) {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "Request handled",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	if err := server.RegisterRoutes(e); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
