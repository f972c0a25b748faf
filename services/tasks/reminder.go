package tasks

import (
	"encoding/json"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/config"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// Reminders fire this long before the appointment starts.
const ReminderLeadTime = 24 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminder tasks.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler constructs a scheduler backed by the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// ScheduleAppointmentReminder queues a reminder 24 hours before the
// appointment. Appointments starting sooner than the lead time get no
// reminder.
func (s *ReminderScheduler) ScheduleAppointmentReminder(appt models.Appointment) error {
	logger := utils.GetLogger()

	start, err := appt.StartTime()
	if err != nil {
		return err
	}
	fireAt := start.Add(-ReminderLeadTime)
	if fireAt.Before(time.Now()) {
		logger.Debug("Appointment too soon for a reminder", zap.String("appointmentId", appt.ID))
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientName:   appt.PatientName,
		PatientPhone:  appt.PatientPhone,
		DoctorName:    appt.DoctorName,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return err
	}
	logger.Info("Reminder scheduled",
		zap.String("appointmentId", appt.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
