package main

import (
	"context"
	"fmt"

	"github.com/contactkeeper/go-contact-keeper/internal/config"
	handlerhttp "github.com/contactkeeper/go-contact-keeper/internal/handler/http"
	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/notify"
	"github.com/contactkeeper/go-contact-keeper/internal/server"
	"github.com/contactkeeper/go-contact-keeper/internal/service"
	"github.com/contactkeeper/go-contact-keeper/internal/store"
	"github.com/contactkeeper/go-contact-keeper/internal/upload"
	"github.com/contactkeeper/go-contact-keeper/internal/workers"
	"github.com/redis/go-redis/v9"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("contact-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	storages := store.NewStorages(db, log)

	redisOpts, err := redis.ParseURL(cfg.Storage.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing redis url")
	}
	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("error connecting to redis (ping)")
	}
	defer redisClient.Close()

	sender, err := notify.NewSMTPSender(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating smtp sender")
	}

	mailWorker := workers.NewMailWorker(sender, log)
	background := workers.NewWorkers(mailWorker)

	uploader := upload.NewCloudinaryClient(cfg.Cloudinary, log)
	services := service.NewServices(storages, mailWorker, uploader, cfg, log)

	limiter := handlerhttp.NewRateLimiter(redisClient, cfg.Storage.Redis, log)
	handler := handlerhttp.NewHandler(services, limiter, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background.Run()
	srv.RunServer()
	background.Stop()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
