package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/utils"

	"go.uber.org/zap"
)

// ErrSlotTaken signals that the requested doctor/date/time is already booked.
var ErrSlotTaken = fmt.Errorf("the selected time slot is already booked")

// HasConflict reports whether the doctor already has a scheduled or confirmed
// appointment at the given date and time.
func (s *DefaultAppointmentService) HasConflict(ctx context.Context, doctorName, date, timeStr string) (bool, error) {
	count, err := s.Repo.CountActiveAt(ctx, doctorName, date, timeStr)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Book validates and persists an appointment, re-checking the slot and
// queueing a reminder on success.
func (s *DefaultAppointmentService) Book(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(appt.PatientName) == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if strings.TrimSpace(appt.DoctorName) == "" {
		return nil, fmt.Errorf("doctor name is required")
	}
	if err := utils.ValidatePhone(appt.PatientPhone); err != nil {
		return nil, err
	}
	if err := utils.ValidateAppointmentDate(appt.Date, time.Now()); err != nil {
		return nil, err
	}
	if err := utils.ValidateAppointmentTime(appt.Time); err != nil {
		return nil, err
	}

	conflict, err := s.HasConflict(ctx, appt.DoctorName, appt.Date, appt.Time)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	if err := s.Repo.Create(ctx, &appt); err != nil {
		logger.Error("Failed to book appointment", zap.String("doctor", appt.DoctorName), zap.Error(err))
		return nil, err
	}

	if s.Reminders != nil {
		// Reminder scheduling is best effort; the booking stands either way.
		if err := s.Reminders.ScheduleAppointmentReminder(appt); err != nil {
			logger.Warn("Failed to schedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	logger.Info("Appointment booked",
		zap.String("id", appt.ID),
		zap.String("doctor", appt.DoctorName),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	return &appt, nil
}

// CommitBooking validates and persists an appointment, returning its ID.
func (s *DefaultAppointmentService) CommitBooking(ctx context.Context, appt models.Appointment) (string, error) {
	booked, err := s.Book(ctx, appt)
	if err != nil {
		return "", err
	}
	return booked.ID, nil
}

// Cancel cancels an active appointment with a reason.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, reason string) error {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt.Status == models.StatusCompleted || appt.Status == models.StatusCancelled {
		return fmt.Errorf("appointment %s is already %s", id, strings.ToLower(string(appt.Status)))
	}
	if reason == "" {
		reason = "No reason provided"
	}
	return s.Repo.UpdateStatus(ctx, id, models.StatusCancelled, reason)
}

// Reschedule moves an active appointment to a new conflict-free slot.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, id, date, timeStr string) (*models.Appointment, error) {
	if err := utils.ValidateAppointmentDate(date, time.Now()); err != nil {
		return nil, err
	}
	if err := utils.ValidateAppointmentTime(timeStr); err != nil {
		return nil, err
	}

	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appt.IsActive() {
		return nil, fmt.Errorf("appointment %s cannot be rescheduled (status %s)", id, appt.Status)
	}

	conflict, err := s.HasConflict(ctx, appt.DoctorName, date, timeStr)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	if err := s.Repo.Reschedule(ctx, id, date, timeStr); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

// GetByID fetches a single appointment.
func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetAll lists every appointment.
func (s *DefaultAppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.GetAll(ctx)
}

// GetByPatient lists appointments matching a patient name or phone.
func (s *DefaultAppointmentService) GetByPatient(ctx context.Context, term string) ([]models.Appointment, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("patient name or phone is required")
	}
	return s.Repo.GetByPatient(ctx, term)
}
