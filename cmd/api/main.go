package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"posts-admin/cmd/api/auth"
	"posts-admin/cmd/api/clients/commentclient"
	"posts-admin/cmd/api/clients/postclient"
	"posts-admin/cmd/api/clients/userclient"
	"posts-admin/cmd/api/httpclient"
	"posts-admin/cmd/api/router"
	"posts-admin/cmd/api/services"
	"posts-admin/cmd/internal/logger"
	"posts-admin/config"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.Log.Errorf("invalid auth configuration: %v", err)
		os.Exit(1)
	}
	if jwtManager == nil {
		logger.Log.Warn("JWT_SECRET not set, admin API runs without authentication")
	}

	httpClient := httpclient.New(httpclient.Config{Timeout: time.Duration(cfg.PostsAPI.TimeoutSeconds) * time.Second})
	base := httpclient.NewBaseClientWithClient(httpClient, cfg.PostsAPI.BaseURL)

	gateway := services.NewPostsGateway(postclient.New(base), userclient.New(base))
	comments := services.NewCommentsCache(commentclient.New(base))
	ctrl := services.NewPostsController(gateway, comments, services.WithLimitOptions(cfg.Pagination.LimitOptions))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mountCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	if err := ctrl.Mount(mountCtx); err != nil {
		// 첫 화면 로딩 실패는 치명적이지 않다. /view 요청 시 다시 가져온다.
		logger.Log.Warnf("initial load failed: %v", err)
	}
	cancel()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Span-Id"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           corsHandler.Handler(router.New(ctrl, jwtManager)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("admin api listening", logger.Fields{"addr": srv.Addr, "posts_api": cfg.PostsAPI.BaseURL})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("shutdown: %v", err)
	}
}
