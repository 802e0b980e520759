package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sydoni/sydoni-drive/internal/pkg/config"
	"github.com/sydoni/sydoni-drive/internal/pkg/logger"
	"github.com/sydoni/sydoni-drive/internal/pkg/server"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
	"github.com/sydoni/sydoni-drive/services/location"
	rideshttp "github.com/sydoni/sydoni-drive/services/rides/handler/http"
	ridesrepo "github.com/sydoni/sydoni-drive/services/rides/repository"
	ridesuc "github.com/sydoni/sydoni-drive/services/rides/usecase"
	univhttp "github.com/sydoni/sydoni-drive/services/universities/handler/http"
	univrepo "github.com/sydoni/sydoni-drive/services/universities/repository"
	usershttp "github.com/sydoni/sydoni-drive/services/users/handler/http"
	usersrepo "github.com/sydoni/sydoni-drive/services/users/repository"
	usersuc "github.com/sydoni/sydoni-drive/services/users/usecase"
)

func main() {
	appName := "sydoni-drive"
	configPath := "config/sydoni.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize the flat-file document store
	store, err := storage.NewStore(configs.Storage.DataDir)
	if err != nil {
		zapLogger.Fatal("Failed to open data directory", logger.Err(err))
	}

	// Initialize repositories
	userRepo := usersrepo.NewUserRepo(store)
	listingRepo := ridesrepo.NewListingRepo(store)
	historyRepo := ridesrepo.NewHistoryRepo(store)
	reservationRepo := ridesrepo.NewReservationRepo(store)
	directory := univrepo.NewUniversityRepo(store)

	// Seed the university directory on first run
	if err := directory.EnsureSeeded(context.Background()); err != nil {
		zapLogger.Fatal("Failed to seed university directory", logger.Err(err))
	}

	// Initialize use cases
	userUC := usersuc.NewUserUC(userRepo)
	rideUC, err := ridesuc.NewRideUC(configs, listingRepo, historyRepo, reservationRepo, userUC, directory)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride coordinator", logger.Err(err))
	}

	// Location capability: static fallback coordinate, no real geolocation
	locations := location.NewStaticProvider(
		configs.Location.DefaultLatitude,
		configs.Location.DefaultLongitude)

	// Initialize HTTP delivery
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(logger.EchoMiddleware(zapLogger))

	usershttp.NewUserHandler(userUC).RegisterRoutes(e)
	univhttp.NewUniversityHandler(directory).RegisterRoutes(e)
	rideshttp.NewRidesHandler(rideUC, locations).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
