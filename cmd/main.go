package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"staffnotes/internal/caching"
	"staffnotes/internal/config"
	"staffnotes/internal/handlers"
	"staffnotes/internal/jobs/background"
	"staffnotes/internal/middleware"
	"staffnotes/internal/models"
	"staffnotes/internal/repositories"
	"staffnotes/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Database connection pool
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Cache
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Object storage for export archives
	storageSvc, err := services.NewMinioStorageService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := storageSvc.EnsureBucketExists(context.Background(), cfg.ExportBucket); err != nil {
		log.Printf("WARNING: could not ensure export bucket %q: %v", cfg.ExportBucket, err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	companyRepo := repositories.NewCompanyRepository(pool)
	employeeRepo := repositories.NewEmployeeRepository(pool)
	noteRepo := repositories.NewNoteRepository(pool)

	// Services
	authSvc := services.NewAuthService(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := services.NewUserService(userRepo, companyRepo, authSvc)
	companySvc := services.NewCompanyService(companyRepo, cacheSvc)
	employeeSvc := services.NewEmployeeService(employeeRepo)
	noteSvc := services.NewNoteService(noteRepo, employeeRepo)
	exportSvc := services.NewExportService(noteRepo, storageSvc, cfg.ExportBucket)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(userSvc)
	companyHandlers := handlers.NewCompanyHandlers(companySvc)
	employeeHandlers := handlers.NewEmployeeHandlers(employeeSvc)
	noteHandlers := handlers.NewNoteHandlers(noteSvc, exportSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, storageSvc, cfg.ExportBucket)

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	api := e.Group("/api")

	// Authentication routes (no token required)
	auth := api.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)

	// Public company lookup: resolving a company id to its name requires no
	// authentication so the registration flow can use it.
	api.GET("/companies/:id", companyHandlers.GetCompany)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.Authenticate(authSvc, userSvc))

	protected.GET("/auth/me", authHandlers.Me)

	// Company management is admin only
	admin := protected.Group("", middleware.RequireRole(models.RoleAdmin))
	admin.POST("/companies", companyHandlers.CreateCompany)
	admin.GET("/companies", companyHandlers.ListCompanies)

	// Employee routes, always scoped to the caller's company
	protected.POST("/employees", employeeHandlers.CreateEmployee)
	protected.GET("/employees", employeeHandlers.ListEmployees)
	protected.GET("/employees/number/:employee_number", employeeHandlers.GetEmployeeByNumber)
	protected.GET("/employees/:id", employeeHandlers.GetEmployee)

	// Note routes
	protected.POST("/notes", noteHandlers.CreateNote)
	protected.GET("/notes", noteHandlers.ListNotes)
	protected.GET("/notes/employee/:employee_id", noteHandlers.ListEmployeeNotes)
	protected.GET("/notes/export/csv", noteHandlers.ExportNotesCSV)

	// Background export archive job
	if cfg.ExportArchiveEnabled {
		scheduler, err := background.NewJobScheduler(companyRepo, exportSvc, cfg.ExportArchiveInterval)
		if err != nil {
			log.Fatalf("Failed to create job scheduler: %v", err)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				log.Printf("Failed to stop scheduler: %v", err)
			}
		}()
	}

	log.Printf("staffnotes server starting on port %d", cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
