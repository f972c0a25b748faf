// File: services/chatbot/prompts.go
package chatbot

import (
	"fmt"
	"strings"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
)

func greetingPrompt() string {
	return "Welcome to DentalClinic Pro! I can help you book an appointment. May I have your name?"
}

func symptomPrompt(name string) string {
	return fmt.Sprintf("Nice to meet you, %s. What brings you in today? Describe the problem in your own words.", name)
}

func serviceMenu() string {
	var b strings.Builder
	b.WriteString("Thanks, I've noted that. Which service would you like?\n")
	for i, svc := range models.ServiceTypes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, svc)
	}
	b.WriteString("Reply with the number or the name of the service.")
	return b.String()
}

func datePrompt() string {
	return "What date works for you? Please use YYYY-MM-DD, any day within the next 90 days."
}

func timePrompt() string {
	return "What time would you like? We book on the hour and half hour between 08:00 and 19:30 (HH:MM)."
}

func phonePrompt() string {
	return "Almost done. What's the best phone number to reach you?"
}

func doctorPrompt() string {
	return "Do you have a preferred doctor? Give a name, or say 'any' for the first available."
}

func confirmationPrompt(s *Session) string {
	return fmt.Sprintf(
		"Please confirm your booking:\n"+
			"  Patient: %s\n"+
			"  Service: %s\n"+
			"  Date:    %s\n"+
			"  Time:    %s\n"+
			"  Phone:   %s\n"+
			"  Doctor:  %s\n"+
			"Reply 'yes' to book or 'no' to cancel.",
		s.Slots.PatientName, s.Slots.Service, s.Slots.Date,
		s.Slots.Time, s.Slots.Phone, s.Slots.DoctorName)
}

func bookedReply(s *Session, appointmentID string) string {
	return fmt.Sprintf(
		"You're booked! Appointment %s: %s with %s on %s at %s. We'll remind you the day before. See you then, %s!",
		appointmentID, s.Slots.Service, s.Slots.DoctorName,
		s.Slots.Date, s.Slots.Time, s.Slots.PatientName)
}

func cancelledReply() string {
	return "No problem, the booking has been cancelled. Message me any time to start again."
}

func conflictReply(s *Session) string {
	return fmt.Sprintf(
		"Sorry, %s is already booked on %s at %s. Type 'restart' to pick a different slot, or 'cancel' to stop.",
		s.Slots.DoctorName, s.Slots.Date, s.Slots.Time)
}

func unavailableReply() string {
	return "Sorry, I'm having trouble reaching our systems right now. Please try again in a moment."
}

func clarifyPrompt(state State) string {
	switch state {
	case StateGreeting:
		return "Sorry, I didn't catch your name. What should I call you?"
	case StateServiceSelection:
		return "I didn't recognise that service. " + serviceMenu()
	case StateDateSelection:
		return "I didn't catch a date there. " + datePrompt()
	case StateTimeSelection:
		return "I didn't catch a time there. " + timePrompt()
	case StatePhoneCollection:
		return "That doesn't look like a phone number. " + phonePrompt()
	case StateConfirmation:
		return "Please reply 'yes' to book or 'no' to cancel."
	default:
		return "Sorry, I didn't understand that. Could you rephrase?"
	}
}

// promptFor is the question the engine asks on entering a state.
func promptFor(s *Session) string {
	switch s.State {
	case StateGreeting:
		return greetingPrompt()
	case StateSymptomIntake:
		return symptomPrompt(s.Slots.PatientName)
	case StateServiceSelection:
		return serviceMenu()
	case StateDateSelection:
		return datePrompt()
	case StateTimeSelection:
		return timePrompt()
	case StatePhoneCollection:
		return phonePrompt()
	case StateDoctorSelection:
		return doctorPrompt()
	case StateConfirmation:
		return confirmationPrompt(s)
	}
	return clarifyPrompt(s.State)
}
