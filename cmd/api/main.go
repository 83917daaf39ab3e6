package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"signalbench/internal/handlers"
	"signalbench/internal/routes"
	"signalbench/internal/secrets"
	"signalbench/internal/store"
	"signalbench/pkg/config"
	"signalbench/schedule"
)

func main() {
	godotenv.Load()

	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	// Initialize database
	config.InitDB()

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		config.ExecuteMigrations()
	}

	// Initialize RabbitMQ (optional, task dispatch is disabled without it)
	var publisher *config.Publisher
	if os.Getenv("RABBITMQ_HOST") != "" {
		config.InitRabbitMQ()
		defer func() {
			if config.RabbitMQ != nil {
				config.RabbitMQ.Close()
			}
		}()

		var err error
		publisher, err = config.NewPublisher()
		if err != nil {
			log.Fatal("Failed to create publisher: ", err)
		}
		defer publisher.Close()
		log.Info("RabbitMQ initialized successfully")
	} else {
		log.Info("RabbitMQ not configured, task dispatch disabled")
	}

	cipher := secrets.NewCipher(os.Getenv("SECRET_ENCRYPTION_KEY"))
	st := store.New(config.DB, cipher, secrets.NewSystemSaltSource())

	// Start the comparison recorder
	cronRunner := schedule.Start(st)
	defer cronRunner.Stop()

	// Set up router
	r := routes.SetupRouter(handlers.New(st, publisher))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
