package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"techtravel/internal/config"
	"techtravel/internal/database"
	"techtravel/internal/temporal/activities"
	"techtravel/internal/temporal/workflows"
)

func main() {
	// Load configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// Connect to database
	db, err := database.NewDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database")

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort: cfg.TemporalAddress,
	})
	if err != nil {
		log.Fatalf("Failed to create Temporal client: %v", err)
	}
	defer temporalClient.Close()

	log.Println("Connected to Temporal")

	// Create worker
	w := worker.New(temporalClient, workflows.OrderTaskQueue, worker.Options{})

	// Register workflows
	w.RegisterWorkflow(workflows.OrderWorkflow)

	// Register activities
	orderActivities := activities.NewOrderActivities(db)
	w.RegisterActivity(orderActivities.RecordOrder)
	w.RegisterActivity(orderActivities.MarkOrderNotified)

	notifyActivities := activities.NewNotifyActivities()
	w.RegisterActivity(notifyActivities.PublishOrderPlaced)
	w.RegisterActivity(notifyActivities.SendOrderConfirmation)

	// Start worker
	err = w.Start()
	if err != nil {
		log.Fatalf("Failed to start worker: %v", err)
	}

	log.Println("Worker started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down worker...")
	w.Stop()
	log.Println("Worker stopped")
}
