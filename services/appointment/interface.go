package appointment

import (
	"context"

	appointmentRepo "github.com/mmh06md-hub/Dental-Clinic-V2/database/repository/appointment"
	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/tasks"
)

// AppointmentService defines booking and appointment management operations.
// HasConflict and CommitBooking form the gateway contract the chatbot
// engine books through.
type AppointmentService interface {
	// HasConflict reports whether the doctor already has an active
	// appointment at the given date and time.
	HasConflict(ctx context.Context, doctorName, date, timeStr string) (bool, error)
	// CommitBooking validates and persists an appointment, returning its ID.
	CommitBooking(ctx context.Context, appt models.Appointment) (string, error)

	// Book is CommitBooking returning the stored record.
	Book(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	// Cancel cancels an active appointment with a reason.
	Cancel(ctx context.Context, id, reason string) error
	// Reschedule moves an active appointment to a new conflict-free slot.
	Reschedule(ctx context.Context, id, date, timeStr string) (*models.Appointment, error)
	// GetByID fetches a single appointment.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetAll lists every appointment.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByPatient lists appointments matching a patient name or phone.
	GetByPatient(ctx context.Context, term string) ([]models.Appointment, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo appointmentRepo.AppointmentRepository
	// Reminders is optional; when nil no reminders are queued.
	Reminders *tasks.ReminderScheduler
}
