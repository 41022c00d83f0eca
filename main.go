package main

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"ecommerce-server/cache"
	"ecommerce-server/config"
	"ecommerce-server/database"
	"ecommerce-server/handlers"
	"ecommerce-server/middleware"
	"ecommerce-server/realtime"
	"ecommerce-server/router"
)

func main() {
	cfg := config.LoadConfig()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	client, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	log.Info("connected to MongoDB")

	// The cache is optional: a missing Redis only disables read-through
	// caching, the catalog still works against the store.
	if err := cache.InitRedis(cache.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}); err != nil {
		log.WithError(err).Warn("redis unavailable, running without cache")
	}

	sessions := middleware.NewSessionManager(cfg.SessionSecret)
	h := handlers.NewHandler(client, cfg.Database, sessions, log, cfg.UploadDir)

	hub := realtime.NewHub(realtime.NewMessageStore(client, cfg.Database), log)
	go hub.Run(context.Background())

	r := router.SetupRoutes(h, hub)

	log.WithField("port", cfg.Port).Info("server listening")
	if err := http.ListenAndServe(cfg.Port, r); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
