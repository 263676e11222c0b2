package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/akademix/backend/internal/config"
	"github.com/akademix/backend/internal/database"
	postgresrepo "github.com/akademix/backend/internal/repository/postgres"
	"github.com/akademix/backend/internal/service"
	"github.com/akademix/backend/internal/transport/http/handlers"
	"github.com/akademix/backend/internal/transport/http/middleware"
	"github.com/akademix/backend/internal/transport/ws"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load error", zap.Error(err))
	}

	// Database
	ctx := context.Background()
	if err := database.Migrate(ctx, cfg); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	followRepo := postgresrepo.NewFollowRepo(pool)
	publicationRepo := postgresrepo.NewPublicationRepo(pool)
	commentRepo := postgresrepo.NewCommentRepo(pool)
	likeRepo := postgresrepo.NewLikeRepo(pool)

	// Services
	tokenTTL := time.Duration(cfg.TokenTTL) * time.Hour
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	userService := service.NewUserService(userRepo, followRepo, publicationRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	publicationService := service.NewPublicationService(publicationRepo, userRepo, likeRepo)
	commentService := service.NewCommentService(commentRepo, publicationRepo, userRepo)
	reactionService := service.NewReactionService(likeRepo, userRepo, publicationRepo, commentRepo)

	// Activity feed
	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)
	publicationService.SetNotifier(notifier)
	commentService.SetNotifier(notifier)
	reactionService.SetNotifier(notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, followService, logger)
	publicationHandler := handlers.NewPublicationHandler(publicationService, reactionService, logger)
	commentHandler := handlers.NewCommentHandler(commentService, reactionService, logger)

	// Middleware
	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Users
	mux.Handle("GET /api/v1/users/me", auth(http.HandlerFunc(userHandler.Me)))
	mux.Handle("PATCH /api/v1/users/me", auth(http.HandlerFunc(userHandler.UpdateMe)))
	mux.HandleFunc("GET /api/v1/users/search", userHandler.Search)
	mux.HandleFunc("GET /api/v1/users/{id}", userHandler.Profile)
	mux.Handle("POST /api/v1/users/{id}/follow", auth(http.HandlerFunc(userHandler.Follow)))
	mux.Handle("DELETE /api/v1/users/{id}/follow", auth(http.HandlerFunc(userHandler.Unfollow)))
	mux.HandleFunc("GET /api/v1/users/{id}/followers", userHandler.Followers)
	mux.HandleFunc("GET /api/v1/users/{id}/following", userHandler.Following)

	// Publications
	mux.HandleFunc("GET /api/v1/publications", publicationHandler.List)
	mux.Handle("POST /api/v1/publications", auth(http.HandlerFunc(publicationHandler.Create)))
	mux.HandleFunc("GET /api/v1/publications/search", publicationHandler.Search)
	mux.Handle("GET /api/v1/publications/{id}", optionalAuth(http.HandlerFunc(publicationHandler.Get)))
	mux.Handle("PATCH /api/v1/publications/{id}", auth(http.HandlerFunc(publicationHandler.Update)))
	mux.Handle("DELETE /api/v1/publications/{id}", auth(http.HandlerFunc(publicationHandler.Delete)))
	mux.HandleFunc("GET /api/v1/publications/user/{id}", publicationHandler.ListByAuthor)
	mux.Handle("PUT /api/v1/publications/{id}/like", auth(http.HandlerFunc(publicationHandler.Like)))
	mux.Handle("DELETE /api/v1/publications/{id}/like", auth(http.HandlerFunc(publicationHandler.Unlike)))

	// Comments
	mux.HandleFunc("GET /api/v1/publications/{id}/comments", commentHandler.ListByPublication)
	mux.Handle("POST /api/v1/publications/{id}/comments", auth(http.HandlerFunc(commentHandler.Create)))
	mux.Handle("PATCH /api/v1/comments/{id}", auth(http.HandlerFunc(commentHandler.Update)))
	mux.Handle("DELETE /api/v1/comments/{id}", auth(http.HandlerFunc(commentHandler.Delete)))
	mux.Handle("PUT /api/v1/comments/{id}/like", auth(http.HandlerFunc(commentHandler.Like)))
	mux.Handle("DELETE /api/v1/comments/{id}/like", auth(http.HandlerFunc(commentHandler.Unlike)))

	// Activity feed
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	handler := middleware.CORS(middleware.Metrics(mux))

	logger.Info("starting server", zap.String("port", cfg.ServerPort))
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
