// File: services/chatbot/states.go
package chatbot

// State is one stage of the booking conversation.
type State string

const (
	StateGreeting         State = "GREETING"
	StateSymptomIntake    State = "SYMPTOM_INTAKE"
	StateServiceSelection State = "SERVICE_SELECTION"
	StateDateSelection    State = "DATE_SELECTION"
	StateTimeSelection    State = "TIME_SELECTION"
	StatePhoneCollection  State = "PHONE_COLLECTION"
	StateDoctorSelection  State = "DOCTOR_SELECTION"
	StateConfirmation     State = "CONFIRMATION"

	// Terminal states. Sessions in a terminal state are destroyed, so the
	// next turn under the same session id starts a fresh conversation.
	StateBooked    State = "BOOKED"
	StateCancelled State = "CANCELLED"
	StateExpired   State = "EXPIRED"
)

// States lists the closed state set in booking order, terminals last.
var States = []State{
	StateGreeting,
	StateSymptomIntake,
	StateServiceSelection,
	StateDateSelection,
	StateTimeSelection,
	StatePhoneCollection,
	StateDoctorSelection,
	StateConfirmation,
	StateBooked,
	StateCancelled,
	StateExpired,
}

// Terminal reports whether s ends the conversation.
func (s State) Terminal() bool {
	return s == StateBooked || s == StateCancelled || s == StateExpired
}

// transitions is the full table of advancing edges (state x intent -> next
// state). Any (state, intent) pair absent from the table is a self-loop:
// the engine re-prompts without touching the session. Cancel and restart are
// global and handled before the table is consulted. Filled slots are
// immutable, so no state has an edge that rewrites an earlier slot; the only
// way back is a restart.
var transitions = map[State]map[Intent]State{
	StateGreeting: {
		IntentGreeting:  StateGreeting,
		IntentNameGiven: StateSymptomIntake,
	},
	StateSymptomIntake: {
		IntentSymptomReport: StateServiceSelection,
	},
	StateServiceSelection: {
		IntentServiceSelection: StateDateSelection,
	},
	StateDateSelection: {
		IntentDateGiven: StateTimeSelection,
	},
	StateTimeSelection: {
		IntentTimeGiven: StatePhoneCollection,
	},
	StatePhoneCollection: {
		IntentPhoneGiven: StateDoctorSelection,
	},
	StateDoctorSelection: {
		IntentDoctorGiven: StateConfirmation,
	},
	StateConfirmation: {
		IntentConfirm: StateBooked,
		IntentDeny:    StateCancelled,
	},
}

// NextState resolves the transition table. ok is false for self-loops.
func NextState(current State, intent Intent) (State, bool) {
	edges, found := transitions[current]
	if !found {
		return current, false
	}
	next, found := edges[intent]
	if !found {
		return current, false
	}
	return next, true
}
