package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-docstore/config"
	"social-docstore/gateway"
	"social-docstore/realtime"
	"social-docstore/server"
	"social-docstore/stores"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithField("error", err).Fatal("Failed to load configuration")
	}
	cfg.ConfigureLogging()

	ctx := context.Background()

	documentStore, err := stores.GetStore(ctx, cfg)
	if err != nil {
		logrus.WithField("error", err).Fatal("Failed to initialize storage")
	}

	hub := realtime.NewHub(cfg.Origins())
	gw := gateway.New(documentStore, cfg.DocumentKey, gateway.WithNotifier(hub))
	if err := gw.Init(ctx, cfg.SeedPath); err != nil {
		logrus.WithField("error", err).Fatal("Failed to prepare working copy")
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: server.NewRouter(gw, server.Options{
			AllowedOrigins: cfg.Origins(),
			Realtime:       hub.Handler(),
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// No WriteTimeout: socket.io long-polling keeps responses open.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.Port).Info("JSON server is running")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logrus.WithField("error", err).Fatal("Server stopped unexpectedly")
		}
	}()

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
	s := <-signalC
	logrus.WithField("signal", s.String()).Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithField("error", err).Error("Graceful shutdown failed")
	}
	hub.Close()
}
