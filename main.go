package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tonotes/config"
	"tonotes/handler"
	"tonotes/repository"
	"tonotes/services"
	"tonotes/usecase"
	"tonotes/utils"
)

// stores bundles the collaborators picked by STORE_DRIVER.
type stores struct {
	notes    usecase.NoteStore
	activity usecase.ActivityStore
	health   handler.Pinger
	cache    handler.Pinger
	close    func(context.Context)
}

func openStores(ctx context.Context, cfg config.AppConfig, logger *zap.Logger) (*stores, error) {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		mem := repository.NewMemoryStore()
		return &stores{notes: mem, activity: mem, health: mem, close: func(context.Context) {}}, nil
	}

	client, err := utils.NewMongoClient(ctx, cfg.Database.MongoOptions())
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Database.DatabaseName)
	if err := repository.SetupIndexes(ctx, db, cfg.Database.NotesCollection, cfg.Database.ActivitiesCollection); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	s := &stores{}
	var cache repository.ActivityCache
	var activityCache *services.ActivityCache
	if cfg.RedisURL != "" {
		activityCache, err = services.NewActivityCache(cfg.RedisURL, cfg.ActivityTTL)
		if err != nil {
			// Activity reads fall back to Mongo.
			logger.Warn("activity cache disabled", zap.Error(err))
		} else {
			cache = activityCache
			s.cache = activityCache
		}
	}

	notes := repository.NewNotesRepo(db, cfg.Database.NotesCollection)
	s.notes = notes
	s.health = notes
	s.activity = repository.NewActivityRepo(db, cfg.Database.ActivitiesCollection, cache, logger)
	s.close = func(ctx context.Context) {
		if activityCache != nil {
			_ = activityCache.Close()
		}
		disconnect(ctx, client, logger)
	}
	return s, nil
}

func disconnect(ctx context.Context, client *mongo.Client, logger *zap.Logger) {
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	st, err := openStores(startCtx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("failed to open stores", zap.Error(err))
	}

	clock := utils.RealClock{}
	rankingService := &usecase.RankingService{
		Notes:    st.notes,
		Activity: st.activity,
		Clock:    clock,
		Config:   cfg.Ranking.Config,
		Logger:   logger,
	}
	activityService := &usecase.ActivityService{
		Activity: st.activity,
		Clock:    clock,
		Logger:   logger,
		Timeout:  cfg.TrackingTimeout,
	}
	overrideService := &usecase.OverrideService{
		Notes:  st.notes,
		Clock:  clock,
		Logger: logger,
	}

	router := handler.NewRouter(handler.Routes{
		Focus:    handler.NewFocusHandler(rankingService, clock, logger),
		Activity: handler.NewActivityHandler(activityService, logger),
		Override: handler.NewOverrideHandler(overrideService, clock),
		Health:   handler.NewHealthHandler(st.health, st.cache, 100*time.Millisecond, logger),
	}, handler.RouterOptions{
		JWTSecret:       []byte(cfg.JWTSecretKey),
		MaxRequestBytes: cfg.MaxRequestBytes,
		Logger:          logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := activityService.Wait(shutdownCtx); err != nil {
		logger.Warn("tracking writes still in flight at shutdown", zap.Error(err))
	}
	st.close(shutdownCtx)
	logger.Info("server shutdown complete")
}
