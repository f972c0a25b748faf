package chatbot

import (
	"testing"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntentGlobals(t *testing.T) {
	// Cancel and restart outrank every state.
	for _, state := range States {
		assert.Equal(t, IntentCancel, ClassifyIntent(state, "cancel"), "state %s", state)
		assert.Equal(t, IntentCancel, ClassifyIntent(state, "  EXIT "), "state %s", state)
		assert.Equal(t, IntentCancel, ClassifyIntent(state, "quit"), "state %s", state)
		assert.Equal(t, IntentRestart, ClassifyIntent(state, "restart"), "state %s", state)
	}
}

func TestClassifyIntentEmptyInput(t *testing.T) {
	for _, state := range States {
		assert.Equal(t, IntentUnknown, ClassifyIntent(state, "   "), "state %s", state)
	}
}

func TestClassifyIntentPerState(t *testing.T) {
	cases := []struct {
		state     State
		utterance string
		want      Intent
	}{
		{StateGreeting, "hello", IntentGreeting},
		{StateGreeting, "book appointment", IntentGreeting},
		{StateGreeting, "John Doe", IntentNameGiven},

		{StateSymptomIntake, "my tooth has been aching for days", IntentSymptomReport},

		{StateServiceSelection, "2", IntentServiceSelection},
		{StateServiceSelection, "cleaning", IntentServiceSelection},
		{StateServiceSelection, "root canal", IntentServiceSelection},
		{StateServiceSelection, "something else entirely", IntentUnknown},
		{StateServiceSelection, "99", IntentUnknown},

		{StateDateSelection, "2026-09-15", IntentDateGiven},
		{StateDateSelection, "whenever works", IntentUnknown},

		{StateTimeSelection, "10:30", IntentTimeGiven},
		{StateTimeSelection, "morning please", IntentUnknown},

		{StatePhoneCollection, "+1 555 010 2030", IntentPhoneGiven},
		{StatePhoneCollection, "you have my number", IntentUnknown},

		{StateDoctorSelection, "Dr. Sarah Johnson", IntentDoctorGiven},
		{StateDoctorSelection, "any", IntentDoctorGiven},

		{StateConfirmation, "yes", IntentConfirm},
		{StateConfirmation, "OK", IntentConfirm},
		{StateConfirmation, "no", IntentDeny},
		{StateConfirmation, "hmm maybe", IntentUnknown},
	}

	for _, tc := range cases {
		got := ClassifyIntent(tc.state, tc.utterance)
		assert.Equal(t, tc.want, got, "state %s, utterance %q", tc.state, tc.utterance)
	}
}

func TestMatchService(t *testing.T) {
	svc, ok := MatchService("1")
	assert.True(t, ok)
	assert.Equal(t, models.ServiceConsultation, svc)

	svc, ok = MatchService("Teeth Cleaning")
	assert.True(t, ok)
	assert.Equal(t, models.ServiceCleaning, svc)

	svc, ok = MatchService("whitening")
	assert.True(t, ok)
	assert.Equal(t, models.ServiceWhitening, svc)

	_, ok = MatchService("0")
	assert.False(t, ok)
	_, ok = MatchService("42")
	assert.False(t, ok)
	_, ok = MatchService("haircut")
	assert.False(t, ok)
}
