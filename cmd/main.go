package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"backoffice-service/internal/api"
	"backoffice-service/internal/config"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/service"
	"backoffice-service/migrations"
)

func connectDB(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
}

func main() {
	cfg := config.FromEnv()

	db, err := connectDB(cfg)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrate(db, 3); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
	}

	kafkaWriter := config.NewKafkaWriter(cfg.OrderTopic)

	customerRepo := repository.NewCustomerRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	customerService := service.NewCustomerService(customerRepo)
	accountService := service.NewAccountService(accountRepo, customerRepo)
	productService := service.NewProductService(productRepo, rdb)
	orderService := service.NewOrderService(orderRepo, customerRepo, kafkaWriter)

	e := echo.New()
	e.Validator = api.NewValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api.Register(e,
		api.NewCustomerHandler(*customerService),
		api.NewAccountHandler(*accountService),
		api.NewProductHandler(*productService),
		api.NewOrderHandler(*orderService),
	)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
