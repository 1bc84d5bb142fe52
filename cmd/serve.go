package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"repair-server/confs"
	"repair-server/db"
	"repair-server/server"
	"repair-server/telemetry"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serverPort      int
	gracefulTimeout int
	skipMigrate     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Starts the HTTP API. Tables are migrated on startup unless --skip-migrate
is given. The server shuts down gracefully on SIGINT or SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := startServer(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&serverPort, "port", 0, "Server port (overrides config file)")
	serveCmd.Flags().IntVar(&gracefulTimeout, "graceful-timeout", 30, "Graceful shutdown timeout in seconds")
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not migrate tables on startup")
}

// startServer returns instead of exiting so deferred cleanup always runs.
func startServer() error {
	cfg, err := confs.LoadConfig(cfgFile)
	if err != nil {
		return errors.Wrap(err, "error loading config")
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	database, err := db.Connect(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing database connection...")
		if err := database.Close(); err != nil {
			log.WithError(err).Error("Error closing database connection")
		}
	}()

	if !skipMigrate {
		if err := db.AutoMigrate(database); err != nil {
			return err
		}
	}

	nrApp, err := telemetry.InitNewRelic(cfg.NewRelic)
	if err != nil {
		log.Warnf("Failed to initialize New Relic: %v", err)
		nrApp = nil
	}
	if nrApp != nil {
		defer nrApp.Shutdown(5 * time.Second)
	}

	srv := server.NewServer(cfg, log, server.PgRepositories(database), nrApp)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Server.Port}).Info("Starting server...")
		errCh <- srv.Start()
	}()

	select {
	case sig := <-stop:
		log.Infof("Received signal %s, shutting down gracefully...", sig.String())
	case err := <-errCh:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(gracefulTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	log.Info("Server exited properly")
	return nil
}
