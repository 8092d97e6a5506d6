package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"afelegance-backend/auth"
	"afelegance-backend/config"
	"afelegance-backend/controllers"
	"afelegance-backend/database"
	"afelegance-backend/media"
	"afelegance-backend/payment"
	"afelegance-backend/routes"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	config.SetupLogger(cfg.Env, cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	tokens, err := auth.NewIssuer(cfg.TokenFormat, []byte(cfg.AccessTokenSecret), []byte(cfg.PasetoSecretKey), cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create token issuer")
	}

	ctrl := &controllers.Controller{
		DB:       store,
		Tokens:   tokens,
		Payments: payment.NewStripeClient(cfg.PaymentSecretKey, cfg.PaymentCurrency),
	}
	if cfg.CloudinaryURL != "" {
		images, err := media.NewCloudinaryUploader(cfg.CloudinaryURL, media.ProductFolder)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure image uploads")
		}
		ctrl.Images = images
	}

	router := routes.Setup(ctrl, routes.Options{
		Env:         cfg.Env,
		EnforceAuth: cfg.EnforceAuth,
		CORSOrigins: cfg.CORSOrigins,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("Server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return store.Close(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}

func openStore(cfg *config.AppConfig) (database.Store, error) {
	if cfg.MongoMode == config.MongoModeMemory {
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return database.NewMemoryStore(), nil
	}

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		return nil, err
	}
	return database.NewMongoStore(client.Database(cfg.DatabaseName)), nil
}
