package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/danielsolis/portfolio-site-backend/api"
	"github.com/danielsolis/portfolio-site-backend/config"
	"github.com/danielsolis/portfolio-site-backend/database"
	"github.com/danielsolis/portfolio-site-backend/services"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	cfg := config.New()

	dbPath := config.GetString(cfg, "DB_PATH", "portfolio.db")
	db, err := database.Open(dbPath)
	if err != nil {
		log.Error().Err(err).Str("path", dbPath).Msg("Error opening database")
		os.Exit(1)
	}

	// Seed categories and the administrator account once, before serving
	if err := database.Bootstrap(db, cfg); err != nil {
		log.Error().Err(err).Msg("Error seeding database")
		os.Exit(1)
	}

	mailer, err := services.NewMailer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Error configuring mailer")
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db, mailer)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
