package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hostaly/rooms-api/internal/api"
	"github.com/hostaly/rooms-api/internal/core/service"
	"github.com/hostaly/rooms-api/internal/infrastructure/config"
	mongodb "github.com/hostaly/rooms-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hostaly/rooms-api/internal/infrastructure/db/redis"
	"github.com/hostaly/rooms-api/internal/infrastructure/queue"
	"github.com/hostaly/rooms-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; missing JWT_SECRET lands here and is fatal.
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	// --- Repositories ---
	authRepo, err := mongodb.NewAuthRepository(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("users collection setup failed")
	}
	roomTypeRepo, err := mongodb.NewRoomTypeRepository(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("room_types collection setup failed")
	}
	roomRepo, err := mongodb.NewRoomRepository(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("rooms collection setup failed")
	}

	// --- Audit trail ---
	audit := queue.NewDispatcher(0, mongodb.NewAuditRepository(db), log)
	audit.Start(ctx)

	// --- Core services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	denylist := redisdb.NewDenylist(rdb)
	authService := service.NewAuthService(authRepo, service.NewBcryptHasher(), tokens, denylist, audit, log)
	roomService := service.NewRoomService(roomTypeRepo, roomRepo, audit, log)

	e := api.NewRouter(api.Dependencies{
		Auth:     authService,
		Rooms:    roomService,
		Verifier: tokens,
		Revoker:  denylist,
		Mongo:    db,
		Redis:    rdb,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
