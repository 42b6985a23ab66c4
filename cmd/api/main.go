package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-api/internal/client"
	"storefront-api/internal/config"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
	"storefront-api/internal/server"
	"storefront-api/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db, err := client.InitDBClient(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatal("init database: ", err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	if cfg.SeedDemoData {
		if err := seedDemoData(context.Background(), categoryRepo, productRepo); err != nil {
			log.Fatal("seed demo data: ", err)
		}
	}

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiryDays)
	catalogService := service.NewCatalogService(productRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(db, orderRepo, productRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(authService, catalogService, categoryService, orderService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}

func seedDemoData(ctx context.Context, categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
	categories := []model.Category{
		{ID: "c1f1d1e0-0000-4000-8000-000000000001", Name: "Watches", Slug: "watches", Description: "Analog and digital watches"},
		{ID: "c1f1d1e0-0000-4000-8000-000000000002", Name: "Belts", Slug: "belts", Description: "Leather and fabric belts"},
		{ID: "c1f1d1e0-0000-4000-8000-000000000003", Name: "Wallets", Slug: "wallets", Description: "Wallets and card holders"},
	}
	if err := categoryRepo.Seed(ctx, categories); err != nil {
		return err
	}

	products := []model.Product{
		{
			ID: "p0a0b0c0-0000-4000-8000-000000000001", Name: "Classic Analog Watch",
			Description: "Stainless steel analog watch", Price: decimal.NewFromInt(1499),
			CategoryID: categories[0].ID, Stock: 25, IsFeatured: true, IsActive: true,
		},
		{
			ID: "p0a0b0c0-0000-4000-8000-000000000002", Name: "Leather Belt",
			Description: "Full-grain leather belt", Price: decimal.NewFromInt(599),
			DiscountPrice: decimal.NewFromInt(449), CategoryID: categories[1].ID,
			Stock: 60, IsActive: true,
		},
		{
			ID: "p0a0b0c0-0000-4000-8000-000000000003", Name: "Bifold Wallet",
			Description: "Slim bifold wallet", Price: decimal.NewFromInt(399),
			CategoryID: categories[2].ID, Stock: 40, IsActive: true,
		},
	}
	return productRepo.Seed(ctx, products)
}
