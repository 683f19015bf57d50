package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slotify/config"
	"slotify/models"
	"slotify/services/notification"
	"slotify/services/reminder"
	"slotify/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the scheduler and the async worker in background.
// The scheduler enqueues the scan task on the configured cadence (hourly by
// default); the worker fans the scan out per business and processes the
// resulting dispatch tasks.
func InitReminderWorker(scanSvc reminder.ScanService, notifSvc notification.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderScan, handleScanTask(scanSvc))
	mux.HandleFunc(tasks.TypeReminderScanBusiness, handleBusinessScanTask(scanSvc))
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifSvc))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register(config.AppConfig.ReminderScanCron, tasks.NewScanTask()); err != nil {
		log.Fatalf("[ReminderWorker] ❗ Failed to register scan schedule: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] ⏱ Starting scan scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[ReminderWorker] ❗ Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleScanTask(scanSvc reminder.ScanService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		count, err := scanSvc.EnqueueBusinessScans(ctx)
		if err != nil {
			log.Printf("[ReminderScan] 🔴 Failed to enqueue business scans: %v", err)
			return err
		}
		log.Printf("[ReminderScan] 🔍 Scan pass fanned out to %d businesses", count)
		return nil
	}
}

func handleBusinessScanTask(scanSvc reminder.ScanService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ScanPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderScan] 🔴 Invalid scan payload: %v", err)
			return err
		}
		return scanSvc.ScanBusiness(ctx, p.BusinessID, p.RunID, time.Now())
	}
}

func handleReminderTask(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		timeout := time.Duration(config.AppConfig.DispatchTimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		log.Printf("[ReminderHandler] ⏰ Dispatching %s reminder for booking %s", p.Bucket, p.BookingID)

		if err := notifSvc.SendReminder(ctx, p); err != nil {
			// Dispatch tasks carry no retries; a provider failure is
			// logged and dropped.
			log.Printf("[ReminderHandler] ❌ Failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
