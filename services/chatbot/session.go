// File: services/chatbot/session.go
package chatbot

import (
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
)

// Slots holds the booking details collected so far. A slot, once filled, is
// never overwritten; changing a value means restarting the conversation.
type Slots struct {
	PatientName string             `json:"patientName,omitempty"`
	Problem     string             `json:"problem,omitempty"`
	Service     models.ServiceType `json:"service,omitempty"`
	Date        string             `json:"date,omitempty"`
	Time        string             `json:"time,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	DoctorName  string             `json:"doctorName,omitempty"`
}

// Session is one in-flight booking conversation.
type Session struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	Slots     Slots     `json:"slots"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSession starts a conversation at the greeting. An empty id gets a
// generated one.
func NewSession(id string, now time.Time) *Session {
	if id == "" {
		id = models.NewID()
	}
	return &Session{
		ID:        id,
		State:     StateGreeting,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ExpiredAt reports whether the session has been idle longer than ttl.
func (s *Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.UpdatedAt) > ttl
}

// ToAppointment maps the collected slots onto an appointment record.
func (s *Session) ToAppointment() models.Appointment {
	return models.Appointment{
		PatientName:  s.Slots.PatientName,
		PatientPhone: s.Slots.Phone,
		DoctorName:   s.Slots.DoctorName,
		ServiceType:  s.Slots.Service,
		Date:         s.Slots.Date,
		Time:         s.Slots.Time,
		Notes:        s.Slots.Problem,
	}
}
