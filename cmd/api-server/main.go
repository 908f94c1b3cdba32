package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dormhub/database"
	"dormhub/internal/config"
	"dormhub/internal/document"
	"dormhub/internal/microservices/http-api/repository"
	"dormhub/internal/microservices/http-api/router"
	"dormhub/internal/microservices/http-api/service"
	"dormhub/internal/microservices/websocket"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := config.NewLogger(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("api_server_failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	redisClient, err := database.ConnectRedis(cfg, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	floorRepo := repository.NewFloorRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	residentRepo := repository.NewResidentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	publicRoomRepo := repository.NewPublicRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	denylist := repository.NewSessionDenylist(redisClient)

	// Live rating feed, stopped before the server returns
	feedCtx, stopFeed := context.WithCancel(context.Background())
	defer stopFeed()
	ratingFeed := websocket.NewHub(logger)
	go ratingFeed.Run(feedCtx)

	// Services
	engine := router.New(cfg, router.Services{
		Auth:        service.NewAuthService(userRepo, denylist, cfg, logger),
		Floors:      service.NewFloorService(floorRepo, blockRepo),
		Blocks:      service.NewBlockService(blockRepo, roomRepo),
		Rooms:       service.NewRoomService(roomRepo),
		Residents:   service.NewResidentService(residentRepo, logger, ratingFeed),
		Ratings:     service.NewRatingService(ratingRepo, logger, ratingFeed),
		Documents:   service.NewDocumentService(residentRepo, document.NewRenderer(cfg.DocumentDir, cfg.DocumentFont)),
		PublicRooms: service.NewPublicRoomService(publicRoomRepo),
		Bookings:    service.NewBookingService(bookingRepo),
		Comments:    service.NewCommentService(commentRepo),
		RatingFeed:  ratingFeed,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("api_server_listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("server_stopped_gracefully")
	return nil
}

