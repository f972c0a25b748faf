// File: services/chatbot/intent.go
package chatbot

import (
	"strconv"
	"strings"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
)

// Intent is the classified meaning of one user utterance.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentNameGiven        Intent = "name-given"
	IntentSymptomReport    Intent = "symptom-report"
	IntentServiceSelection Intent = "service-selection"
	IntentDateGiven        Intent = "date-given"
	IntentTimeGiven        Intent = "time-given"
	IntentPhoneGiven       Intent = "phone-given"
	IntentDoctorGiven      Intent = "doctor-given"
	IntentConfirm          Intent = "confirm"
	IntentDeny             Intent = "deny"
	IntentCancel           Intent = "cancel"
	IntentRestart          Intent = "restart"
	IntentUnknown          Intent = "unknown"
)

var greetingWords = map[string]bool{
	"hi": true, "hello": true, "hey": true, "good morning": true,
	"good afternoon": true, "good evening": true, "start": true,
	"book": true, "appointment": true, "book appointment": true,
	"book an appointment": true, "i want to book an appointment": true,
}

var confirmWords = map[string]bool{
	"yes": true, "y": true, "yeah": true, "yep": true, "ok": true,
	"okay": true, "sure": true, "confirm": true, "correct": true,
}

var denyWords = map[string]bool{
	"no": true, "n": true, "nope": true, "wrong": true,
}

// ClassifyIntent maps an utterance to an intent given the current state. It
// is a pure function: keyword and shape matching only, no storage, no I/O.
// Cancel and restart outrank everything else in any state.
func ClassifyIntent(state State, utterance string) Intent {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return IntentUnknown
	}

	switch text {
	case "cancel", "exit", "quit":
		return IntentCancel
	case "restart", "start over":
		return IntentRestart
	}

	switch state {
	case StateGreeting:
		if greetingWords[text] {
			return IntentGreeting
		}
		// Anything else at the greeting is taken as the caller's name.
		return IntentNameGiven

	case StateSymptomIntake:
		// Free text; whatever the patient says is the complaint.
		return IntentSymptomReport

	case StateServiceSelection:
		if _, ok := MatchService(text); ok {
			return IntentServiceSelection
		}
		return IntentUnknown

	case StateDateSelection:
		if hasDigit(text) {
			return IntentDateGiven
		}
		return IntentUnknown

	case StateTimeSelection:
		if hasDigit(text) {
			return IntentTimeGiven
		}
		return IntentUnknown

	case StatePhoneCollection:
		if hasDigit(text) {
			return IntentPhoneGiven
		}
		return IntentUnknown

	case StateDoctorSelection:
		return IntentDoctorGiven

	case StateConfirmation:
		if confirmWords[text] {
			return IntentConfirm
		}
		if denyWords[text] {
			return IntentDeny
		}
		return IntentUnknown
	}

	return IntentUnknown
}

// MatchService resolves a menu number ("3") or a service name fragment
// ("clean", "teeth cleaning") against the service catalogue.
func MatchService(text string) (models.ServiceType, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", false
	}

	if n, err := strconv.Atoi(text); err == nil {
		if n >= 1 && n <= len(models.ServiceTypes) {
			return models.ServiceTypes[n-1], true
		}
		return "", false
	}

	for _, svc := range models.ServiceTypes {
		name := strings.ToLower(string(svc))
		if name == text || strings.Contains(name, text) || strings.Contains(text, name) {
			return svc, true
		}
	}
	return "", false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
