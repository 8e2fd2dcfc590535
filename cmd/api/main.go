package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pawantalekar/briefly/internal/api"
	"github.com/pawantalekar/briefly/internal/core/service"
	"github.com/pawantalekar/briefly/internal/infrastructure/config"
	"github.com/pawantalekar/briefly/internal/infrastructure/db/mongo"
	"github.com/pawantalekar/briefly/internal/infrastructure/db/redis"
	"github.com/pawantalekar/briefly/internal/infrastructure/feed"
	"github.com/pawantalekar/briefly/internal/infrastructure/queue"
	"github.com/pawantalekar/briefly/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx := context.Background()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	// Repositories.
	userRepo := mongo.NewUserRepository(db)
	blogRepo := mongo.NewBlogRepository(db)
	commentRepo := mongo.NewCommentRepository(db)
	likeRepo := mongo.NewLikeRepository(db)
	categoryRepo := mongo.NewCategoryRepository(db)
	adminRepo := mongo.NewAdminRepository(db)

	// View counting pipeline: handlers enqueue, workers dedupe and persist.
	viewCounter := service.NewViewCountService(blogRepo, redis.NewViewDeduper(rdb), logger.Component("views"))
	dispatcher := queue.NewViewDispatcher(0, viewCounter, logger.Component("dispatcher"))
	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	defer stopDispatcher()
	dispatcher.Start(dispatcherCtx)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)
	svcs := api.Services{
		Tokens:   tokens,
		Auth:     service.NewAuthService(userRepo, tokens, logger.Component("auth")),
		Blogs:    service.NewBlogService(blogRepo, dispatcher, logger.Component("blogs")),
		Comments: service.NewCommentService(commentRepo, logger.Component("comments")),
		Likes:    service.NewLikeService(likeRepo, blogRepo, logger.Component("likes")),
		Category: service.NewCategoryService(categoryRepo, logger.Component("categories")),
		Admin:    service.NewAdminService(adminRepo, blogRepo, commentRepo, likeRepo, logger.Component("admin")),
		Market: service.NewMarketDataService(
			feed.NewCoinGeckoClient(cfg.Market.CoinGeckoURL),
			feed.NewFinnhubClient(cfg.Market.FinnhubURL, cfg.Market.FinnhubAPIKey),
			cfg.Market.CacheTTL,
			logger.Component("market"),
		),
	}

	e := api.NewRouter(cfg, svcs, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutting down")

	stopDispatcher()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
