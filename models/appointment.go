package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "Scheduled"
	StatusConfirmed   AppointmentStatus = "Confirmed"
	StatusInProgress  AppointmentStatus = "In Progress"
	StatusCompleted   AppointmentStatus = "Completed"
	StatusCancelled   AppointmentStatus = "Cancelled"
	StatusNoShow      AppointmentStatus = "No Show"
	StatusRescheduled AppointmentStatus = "Rescheduled"
)

// ActiveStatuses are the statuses that occupy a slot for conflict checks.
var ActiveStatuses = []AppointmentStatus{StatusScheduled, StatusConfirmed}

// ServiceType enumerates the dental services available for booking.
type ServiceType string

const (
	ServiceConsultation ServiceType = "Consultation"
	ServiceCleaning     ServiceType = "Cleaning"
	ServiceFilling      ServiceType = "Filling"
	ServiceRootCanal    ServiceType = "Root Canal"
	ServiceExtraction   ServiceType = "Extraction"
	ServiceOrthodontics ServiceType = "Orthodontics"
	ServiceWhitening    ServiceType = "Whitening"
	ServiceImplant      ServiceType = "Implant"
	ServiceCrown        ServiceType = "Crown"
	ServiceEmergency    ServiceType = "Emergency"
	ServiceOther        ServiceType = "Other"
)

// ServiceTypes lists all bookable services in menu order.
var ServiceTypes = []ServiceType{
	ServiceConsultation,
	ServiceCleaning,
	ServiceFilling,
	ServiceRootCanal,
	ServiceExtraction,
	ServiceOrthodontics,
	ServiceWhitening,
	ServiceImplant,
	ServiceCrown,
	ServiceEmergency,
	ServiceOther,
}

// Appointment represents a scheduled dental visit.
type Appointment struct {
	ID                 string            `bson:"id" json:"id"`
	PatientName        string            `bson:"patientName" json:"patientName"`
	PatientPhone       string            `bson:"patientPhone" json:"patientPhone"`
	DoctorName         string            `bson:"doctorName" json:"doctorName"`
	Date               string            `bson:"date" json:"date"` // YYYY-MM-DD
	Time               string            `bson:"time" json:"time"` // HH:MM
	ServiceType        ServiceType       `bson:"serviceType" json:"serviceType"`
	Status             AppointmentStatus `bson:"status" json:"status"`
	Notes              string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CancellationReason string            `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	DurationMinutes    int               `bson:"durationMinutes" json:"durationMinutes"`
	ReminderSent       bool              `bson:"reminderSent" json:"reminderSent"`
	CreatedAt          time.Time         `bson:"createdAt" json:"createdAt"`
}

// StartTime combines the date and time fields into a single timestamp.
func (a Appointment) StartTime() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, time.Local)
}

// IsActive reports whether the appointment still occupies its slot.
func (a Appointment) IsActive() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}
