package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wanderlist/wanderlist/internal/config"
	"github.com/wanderlist/wanderlist/internal/db"
	"github.com/wanderlist/wanderlist/internal/repository"
	"github.com/wanderlist/wanderlist/internal/service"
	"github.com/wanderlist/wanderlist/internal/storage"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	UserRepository     repository.UserRepository
	AuthService        *service.AuthService
	EmailService       *service.EmailService
	BucketListService  *service.BucketListService
	ImageService       *service.ImageService
	InspirationService *service.InspirationService
	ActivityService    *service.ActivityService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	itemRepository := repository.NewItemRepository(database)
	dismissalRepository := repository.NewDismissalRepository(database)
	activityRepository := repository.NewActivityRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		tokenRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
		cfg.TokenPasswordResetExpiry,
	)
	bucketListService := service.NewBucketListService(itemRepository, dismissalRepository)
	inspirationService := service.NewInspirationService(cfg.ContentPath)
	activityService := service.NewActivityService(activityRepository)

	// Image storage is optional. Without a bucket configured the image
	// endpoints return 503 and everything else works normally.
	var imageService *service.ImageService
	if cfg.StorageConfigured() {
		imageStorage, err := storage.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %v", err)
		}
		imageService = service.NewImageService(imageStorage)
	}

	return &App{
		Cfg:                cfg,
		DB:                 database,
		UserRepository:     userRepository,
		AuthService:        authService,
		EmailService:       emailService,
		BucketListService:  bucketListService,
		ImageService:       imageService,
		InspirationService: inspirationService,
		ActivityService:    activityService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
