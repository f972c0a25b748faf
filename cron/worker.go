package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/config"
	appointmentRepo "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/appointment"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository) {
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(apptRepo))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		// Cancelled or rescheduled appointments get no reminder.
		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] Appointment %s not found: %v", p.AppointmentID, err)
			return nil
		}
		if !appt.IsActive() || appt.Date != p.Date || appt.Time != p.Time {
			log.Printf("[ReminderHandler] Skipping stale reminder for appointment %s", p.AppointmentID)
			return nil
		}

		// No push/SMS channel is wired up; delivery is the log line plus the
		// reminderSent flag the front desk reads.
		log.Printf("[ReminderHandler] Reminder: %s with Dr. %s on %s at %s (phone %s)",
			p.PatientName, p.DoctorName, p.Date, p.Time, p.PatientPhone)

		if err := apptRepo.MarkReminderSent(ctx, p.AppointmentID); err != nil {
			log.Printf("[ReminderHandler] Failed to mark reminder sent: %v", err)
			return err
		}
		return nil
	}
}
