package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram/cmd/config"
	migration "foodgram/cmd/database/migrate"
	"foodgram/cmd/database/seed"
	"foodgram/internal/utils"
	"foodgram/internal/utils/logger"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()
	logger.Init(utils.GetConfig("LOG_LEVEL"))
	defer func() { _ = logger.L.Sync() }()

	cliApp := &cli.App{
		Name:  "foodgram",
		Usage: "recipe sharing backend",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update database tables",
				Action: migrate,
			},
			{
				Name:  "load-ingredients",
				Usage: "load the ingredient catalog from a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "path to a JSON array of {name, measurement_unit}",
						Required: true,
					},
				},
				Action: loadIngredients,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logger.L.Fatal("command failed", zap.Error(err))
	}
}

func serve(ctx *cli.Context) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}

	app, err := config.NewApp(db)
	if err != nil {
		return err
	}

	port := utils.GetConfig("APP_PORT")
	errCh := make(chan error, 1)
	go func() {
		logger.L.Info("http server started", zap.String("port", port))
		errCh <- app.Listen(fmt.Sprintf(":%s", port))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.L.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx.Context, 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func migrate(ctx *cli.Context) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	return migration.Migrate(db)
}

func loadIngredients(ctx *cli.Context) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	_, err = seed.LoadIngredients(ctx.Context, db, ctx.String("file"))
	return err
}
