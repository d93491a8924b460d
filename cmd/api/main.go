package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"student-showcase-api/config"
	"student-showcase-api/controllers"
	"student-showcase-api/middleware"
	"student-showcase-api/models"
	"student-showcase-api/repository"
	"student-showcase-api/routes"
	"student-showcase-api/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Pick the repository backend once; everything downstream gets it injected.
	var (
		repo   repository.SubmissionRepository
		admins repository.AdminStore
	)
	switch cfg.Backend {
	case "memory":
		repo = repository.NewMemoryRepository()
		admins = memoryAdmins(cfg)
		log.Println("Using in-memory repository (data is not persisted)")
	default:
		db, err := config.NewDB(cfg)
		if err != nil {
			log.Fatal("Failed to initialize database: ", err)
		}
		if err := config.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal("Failed to seed admin account: ", err)
		}
		repo = repository.NewGormRepository(db)
		admins = repository.NewGormAdminStore(db)
		log.Println("Database connected successfully")
	}

	dispatcher := services.NewGitHubDispatcher(services.GitHubConfig{
		Token:     cfg.GitHubToken,
		RepoOwner: cfg.GitHubRepoOwner,
		RepoName:  cfg.GitHubRepoName,
	})
	notifier := services.NewEmailNotifier(services.SMTPConfig{
		Host:          cfg.SMTPHost,
		Port:          cfg.SMTPPort,
		Username:      cfg.SMTPUser,
		Password:      cfg.SMTPPass,
		From:          cfg.SMTPFrom,
		SkipTLSVerify: cfg.SMTPSkipTLSVerify,
	})

	moderation := services.NewModerationService(repo, dispatcher, notifier)
	stats := services.NewStatsService(repo)

	ctl := routes.Controllers{
		Submissions: controllers.NewSubmissionController(repo, moderation, stats),
		Students:    controllers.NewStudentController(repo),
		Auth: controllers.NewAuthController(admins, cfg.AdminEmails, cfg.JWTSecret,
			time.Duration(cfg.JWTExpireHours)*time.Hour),
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.SetupRoutes(router, ctl, cfg.JWTSecret)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if cfg.GitHubToken == "" {
		log.Println("Warning: GITHUB_TOKEN not set, PR triggers will fail until configured")
	}

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// memoryAdmins builds the env-seeded admin store for the in-memory backend.
func memoryAdmins(cfg config.Config) repository.AdminStore {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_EMAIL/ADMIN_PASSWORD not set, admin login disabled")
		return repository.NewMemoryAdminStore(nil)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password: ", err)
	}
	return repository.NewMemoryAdminStore(&models.AdminUser{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	})
}
