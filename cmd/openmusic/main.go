package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/egasa21/open-music-api-v2/internal/config"
	"github.com/egasa21/open-music-api-v2/internal/cron"
	"github.com/egasa21/open-music-api-v2/internal/handler"
	"github.com/egasa21/open-music-api-v2/internal/logger"
	"github.com/egasa21/open-music-api-v2/internal/middleware"
	"github.com/egasa21/open-music-api-v2/internal/repository"
	"github.com/egasa21/open-music-api-v2/internal/service"
	"github.com/egasa21/open-music-api-v2/internal/token"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{Level: logger.ParseLevel(cfg.Log.Level)})
	log.Info("Starting openmusic service...")

	db, err := initDatabase(cfg.Postgres)
	if err != nil {
		log.Fatal("Failed to initialize database", logger.Err(err))
	}
	defer db.Close()

	tokens := token.NewManager(&token.Config{
		Secret:        cfg.JWT.Secret,
		Issuer:        cfg.JWT.Issuer,
		AccessExpiry:  cfg.JWT.AccessExpiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})

	playlistService, songService, userService, authService, collabService := initServices(db, tokens)

	cronManager := cron.NewManager(authService, log)
	if err := cronManager.Start(); err != nil {
		log.Fatal("Failed to start cron manager", logger.Err(err))
	}
	defer cronManager.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newRouter(tokens, log, playlistService, songService, userService, authService, collabService),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", logger.String("addr", cfg.Server.Addr()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start HTTP server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down openmusic service...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", logger.Err(err))
	}

	log.Info("openmusic service stopped")
}

// initDatabase 初始化连接池。进程内唯一的连接池，注入到各仓储。
func initDatabase(cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

func initServices(db *pgxpool.Pool, tokens *token.Manager) (
	*service.PlaylistService,
	*service.SongService,
	*service.UserService,
	*service.AuthService,
	*service.CollaborationService,
) {
	// 初始化仓储层
	playlistRepo := repository.NewPlaylistRepository(db)
	playlistSongRepo := repository.NewPlaylistSongRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	collabRepo := repository.NewCollaborationRepository(db)
	songRepo := repository.NewSongRepository(db)
	userRepo := repository.NewUserRepository(db)
	authRepo := repository.NewAuthenticationRepository(db)
	tx := repository.NewTransaction(db)

	// 初始化服务层
	songService := service.NewSongService(songRepo)
	userService := service.NewUserService(userRepo)
	collabService := service.NewCollaborationService(collabRepo, userRepo)
	playlistService := service.NewPlaylistService(
		playlistRepo, playlistSongRepo, activityRepo,
		songService, collabService, tx,
	)
	authService := service.NewAuthService(userService, authRepo, tokens)

	return playlistService, songService, userService, authService, collabService
}

func newRouter(
	tokens *token.Manager,
	log logger.Logger,
	playlistService *service.PlaylistService,
	songService *service.SongService,
	userService *service.UserService,
	authService *service.AuthService,
	collabService *service.CollaborationService,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log))
	router.Use(middleware.Recovery(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userHandler := handler.NewUserHandler(userService)
	router.POST("/users", userHandler.Register)
	router.GET("/users/:id", userHandler.GetUser)

	authHandler := handler.NewAuthHandler(authService)
	router.POST("/authentications", authHandler.Login)
	router.PUT("/authentications", authHandler.Refresh)
	router.DELETE("/authentications", authHandler.Logout)

	songHandler := handler.NewSongHandler(songService)
	router.GET("/songs", songHandler.ListSongs)
	router.GET("/songs/:id", songHandler.GetSong)

	authorized := router.Group("/")
	authorized.Use(middleware.Auth(tokens, log))
	{
		authorized.POST("/songs", songHandler.AddSong)
		authorized.PUT("/songs/:id", songHandler.UpdateSong)
		authorized.DELETE("/songs/:id", songHandler.DeleteSong)

		playlistHandler := handler.NewPlaylistHandler(playlistService)
		authorized.POST("/playlists", playlistHandler.CreatePlaylist)
		authorized.GET("/playlists", playlistHandler.ListPlaylists)
		authorized.DELETE("/playlists/:id", playlistHandler.DeletePlaylist)
		authorized.POST("/playlists/:id/songs", playlistHandler.AddSong)
		authorized.GET("/playlists/:id/songs", playlistHandler.ListSongs)
		authorized.DELETE("/playlists/:id/songs", playlistHandler.RemoveSong)
		authorized.GET("/playlists/:id/activities", playlistHandler.ListActivities)

		collabHandler := handler.NewCollaborationHandler(collabService, playlistService)
		authorized.POST("/collaborations", collabHandler.AddCollaboration)
		authorized.DELETE("/collaborations", collabHandler.DeleteCollaboration)
	}

	return router
}
