package scheduler

import (
	"context"
	"fmt"

	"bhph_crm_backend/platform/config"
	"bhph_crm_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Rescorer re-runs the underwriting engine on a stored application.
// Implemented by the lead service.
type Rescorer interface {
	RescoreByApplicationID(ctx context.Context, applicationID int64) error
}

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	rescorer Rescorer
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, rescorer Rescorer, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		rescorer: rescorer,
		log:      log,
	}

	mux.HandleFunc(TaskRescoreApplication, w.handleRescore)

	return w, nil
}

func (w *Worker) handleRescore(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseRescorePayload(task)
	if err != nil {
		return err
	}

	if err := w.rescorer.RescoreByApplicationID(ctx, payload.ApplicationID); err != nil {
		w.log.Error("rescore task failed", "error", err, "applicationId", payload.ApplicationID)
		return err
	}

	w.log.Info("application rescored", "applicationId", payload.ApplicationID)
	return nil
}

// Run starts the asynq server and blocks until shutdown.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the asynq server gracefully.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
