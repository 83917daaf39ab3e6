package main

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"signalbench/internal/handlers"
	"signalbench/internal/models"
	"signalbench/internal/runner"
	"signalbench/internal/secrets"
	"signalbench/internal/store"
	"signalbench/pkg/config"
)

const checkInInterval = 30 * time.Second

func main() {
	godotenv.Load()

	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ
	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	cipher := secrets.NewCipher(os.Getenv("SECRET_ENCRYPTION_KEY"))
	st := store.New(config.DB, cipher, secrets.NewSystemSaltSource())

	workerID, err := resolveWorkerID(st)
	if err != nil {
		log.Fatal("Failed to resolve worker identity: ", err)
	}
	log.Infof("Worker %d started", workerID)

	// Heartbeat: periodic self-report check-in
	go func() {
		ticker := time.NewTicker(checkInInterval)
		defer ticker.Stop()
		for range ticker.C {
			if err := st.WorkerCheckIn(context.Background(), workerID, os.Getenv("WORKER_IP"), time.Now().UTC()); err != nil {
				log.Errorf("Check-in failed: %v", err)
			}
		}
	}()

	run := runner.NewMock(time.Now().UnixNano())

	msgConsumer, err := config.NewConsumer(handlers.TaskDispatchQueue)
	if err != nil {
		log.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	log.Info("Worker waiting for dispatched tasks...")

	err = msgConsumer.Consume(func(msg []byte) error {
		var dispatch handlers.TaskDispatchMessage
		if err := json.Unmarshal(msg, &dispatch); err != nil {
			log.Errorf("Failed to unmarshal dispatch message: %v", err)
			return err
		}

		return executeTask(st, run, workerID, dispatch)
	})
	if err != nil {
		log.Fatal("Failed to start consumer: ", err)
	}
}

// resolveWorkerID reuses WORKER_ID if set, otherwise registers a new worker
// record for this process.
func resolveWorkerID(st *store.Store) (uint, error) {
	if raw := os.Getenv("WORKER_ID"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return 0, err
		}
		return uint(id), nil
	}

	worker := models.Worker{IPAddress: os.Getenv("WORKER_IP")}
	if err := st.RegisterWorker(context.Background(), &worker); err != nil {
		return 0, err
	}
	return worker.ID, nil
}

// executeTask runs one dispatched task and self-reports the result. The
// execution token from the dispatch message keys the report, so a redelivery
// of the same message cannot double-count.
func executeTask(st *store.Store, run runner.Runner, workerID uint, dispatch handlers.TaskDispatchMessage) error {
	ctx := context.Background()

	task, err := st.GetTask(ctx, dispatch.TaskID)
	if err != nil {
		log.Errorf("Task %d not found: %v", dispatch.TaskID, err)
		return err
	}

	log.Infof("Executing task %d (token %s)", task.ID, dispatch.ExecutionToken)

	result := &models.TaskResult{
		ExecutionToken: dispatch.ExecutionToken,
		WorkerID:       workerID,
		TaskID:         task.ID,
		TestLink:       task.TestLink,
	}

	out, err := run.Run(ctx, task)
	succeeded := err == nil && out.Succeeded
	if err != nil {
		log.Errorf("Task %d execution failed: %v", task.ID, err)
		result.Output = err.Error()
	} else {
		result.AverageDiff = out.AverageDiff
		result.Output = out.Output
		result.PercentCorrect = out.PercentCorrect
		result.PredictionSize = out.PredictionSize
		result.ProfitLossFloat = out.ProfitLossFloat
		result.ProfitLossInt = out.ProfitLossInt
		result.RunTime = out.RunTime
		result.Score = out.Score
	}

	if err := st.SubmitTaskResult(ctx, result, succeeded, time.Now().UTC()); err != nil {
		log.Errorf("Failed to submit result for task %d: %v", task.ID, err)
		return err
	}

	log.Infof("Task %d reported (score %d)", task.ID, result.Score)
	return nil
}
