package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/controller"
	"github.com/tokonusa/inventory-backend/internal/adapter/api/route"
	"github.com/tokonusa/inventory-backend/internal/adapter/repository"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
	"github.com/tokonusa/inventory-backend/internal/service"
	"github.com/tokonusa/inventory-backend/pkg/auth"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// App wires the application dependencies
type App struct {
	router *gin.Engine
	pool   *pgxpool.Pool
	log    logger.Logger
}

// NewApp builds the application: database pool, repositories, services
// and controllers, all injected explicitly.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Pool-bound repositories for the read side and master data
	productRepo := repository.NewProductRepository(pool)
	movementRepo := repository.NewMovementRepository(pool)
	purchaseRepo := repository.NewPurchaseRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	opnameRepo := repository.NewOpnameRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	branchRepo := repository.NewBranchRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	txManager := repository.NewPgTxManager(pool, log)
	numbers := repository.NewDocumentNumberGenerator(pool)

	allowNegativeStock := os.Getenv("ALLOW_NEGATIVE_STOCK") == "true"

	purchaseService := service.NewPurchaseService(txManager, numbers, log)
	saleService := service.NewSaleService(txManager, numbers, allowNegativeStock, log)
	opnameService := service.NewOpnameService(txManager, numbers, log)

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	ctrls := route.Controllers{
		Auth:     controller.NewAuthController(userRepo, jwtService, log),
		User:     controller.NewUserController(userRepo, log),
		Branch:   controller.NewBranchController(branchRepo, log),
		Product:  controller.NewProductController(productRepo, log),
		Supplier: controller.NewSupplierController(supplierRepo, log),
		Customer: controller.NewCustomerController(customerRepo, log),
		Purchase: controller.NewPurchaseController(purchaseService, purchaseRepo, log),
		Sale:     controller.NewSaleController(saleService, saleRepo, log),
		Opname:   controller.NewOpnameController(opnameService, opnameRepo, log),
		Movement: controller.NewMovementController(movementRepo, log),
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Branch-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	route.SetupRoutes(router, ctrls, branchRepo)

	return &App{
		router: router,
		pool:   pool,
		log:    log,
	}, nil
}

// Start runs the HTTP server on PORT (default 8080)
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("starting HTTP server", "port", port)
	return a.router.Run(":" + port)
}

// Close releases the application resources
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
