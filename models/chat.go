package models

// ChatRequest is a single user turn sent to the chatbot.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatResponse is the chatbot's reply for one turn.
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
	State     string `json:"state"`
}

// ReminderPayload is the queued payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientName   string `json:"patientName"`
	PatientPhone  string `json:"patientPhone"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
