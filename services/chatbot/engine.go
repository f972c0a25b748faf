// File: services/chatbot/engine.go
package chatbot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/appointment"
	"github.com/mmh06md-hub/Dental-Clinic-V2/utils"

	"go.uber.org/zap"
)

// BookingGateway is the engine's only window into the clinic. The engine
// checks the slot and commits at most once per conversation, always through
// this interface. DefaultAppointmentService satisfies it.
type BookingGateway interface {
	HasConflict(ctx context.Context, doctorName, date, timeStr string) (bool, error)
	CommitBooking(ctx context.Context, appt models.Appointment) (string, error)
}

// Engine drives the scripted booking conversation. Turns for the same
// session are serialized with a per-session mutex; turns for different
// sessions run concurrently.
type Engine struct {
	store   SessionStore
	gateway BookingGateway
	ttl     time.Duration

	// now is replaceable so expiry can be driven in tests.
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEngine wires the conversation engine. ttl is the inactivity window
// after which a session silently restarts.
func NewEngine(store SessionStore, gateway BookingGateway, ttl time.Duration) *Engine {
	return &Engine{
		store:   store,
		gateway: gateway,
		ttl:     ttl,
		now:     time.Now,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (e *Engine) sessionLock(id string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[id] = lock
	}
	return lock
}

// Advance processes one user turn and returns the reply. Unknown or expired
// session ids start a fresh conversation under the same id. A nil error with
// a reply is the normal path even for invalid input; the error return is for
// storage failures only, and those leave the session untouched.
func (e *Engine) Advance(ctx context.Context, sessionID, message string) (*models.ChatResponse, error) {
	if sessionID == "" {
		sessionID = models.NewID()
	}

	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	logger := utils.GetLogger()
	now := e.now()

	sess, err := e.store.Get(ctx, sessionID)
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired):
		sess = NewSession(sessionID, now)
	case err != nil:
		return nil, err
	case sess.ExpiredAt(now, e.ttl):
		// Silent restart: the stale conversation is discarded and the turn
		// is handled as the first turn of a fresh session.
		logger.Info("Chat session expired, restarting", zap.String("sessionId", sessionID))
		if err := e.store.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
		sess = NewSession(sessionID, now)
	}

	intent := ClassifyIntent(sess.State, message)
	reply, commit := e.applyTurn(ctx, sess, intent, message)

	sess.UpdatedAt = now
	if sess.State.Terminal() {
		if err := e.store.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
	} else if err := e.store.Put(ctx, sess); err != nil {
		return nil, err
	}

	logger.Debug("Chat turn",
		zap.String("sessionId", sessionID),
		zap.String("intent", string(intent)),
		zap.String("state", string(sess.State)),
		zap.Bool("committed", commit))

	return &models.ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
		State:     string(sess.State),
	}, nil
}

// applyTurn mutates the session for one classified turn and returns the
// reply. commit reports whether an appointment was written this turn.
func (e *Engine) applyTurn(ctx context.Context, sess *Session, intent Intent, message string) (reply string, commit bool) {
	text := strings.TrimSpace(message)

	// Cancel and restart work from any state.
	switch intent {
	case IntentCancel:
		sess.State = StateCancelled
		return cancelledReply(), false
	case IntentRestart:
		*sess = *NewSession(sess.ID, sess.CreatedAt)
		return greetingPrompt(), false
	}

	next, ok := NextState(sess.State, intent)
	if !ok {
		// Unclassified input never mutates the session.
		return clarifyPrompt(sess.State), false
	}

	switch sess.State {
	case StateGreeting:
		if intent == IntentNameGiven {
			sess.Slots.PatientName = text
		}

	case StateSymptomIntake:
		sess.Slots.Problem = text

	case StateServiceSelection:
		svc, _ := MatchService(text)
		sess.Slots.Service = svc

	case StateDateSelection:
		if err := utils.ValidateAppointmentDate(text, e.now()); err != nil {
			return err.Error() + " " + datePrompt(), false
		}
		sess.Slots.Date = text

	case StateTimeSelection:
		if err := utils.ValidateAppointmentTime(text); err != nil {
			return err.Error() + " " + timePrompt(), false
		}
		sess.Slots.Time = text

	case StatePhoneCollection:
		if err := utils.ValidatePhone(text); err != nil {
			return err.Error() + " " + phonePrompt(), false
		}
		sess.Slots.Phone = text

	case StateDoctorSelection:
		doctor := text
		if strings.EqualFold(doctor, "any") || strings.EqualFold(doctor, "no") {
			doctor = "Any Available Doctor"
		}
		sess.Slots.DoctorName = doctor

	case StateConfirmation:
		if intent == IntentConfirm {
			return e.confirmBooking(ctx, sess)
		}
		if intent == IntentDeny {
			sess.State = StateCancelled
			return cancelledReply(), false
		}
	}

	sess.State = next
	return promptFor(sess), false
}

// confirmBooking runs the slot check and the single commit. Any failure
// keeps the session in CONFIRMATION so the user can retry, restart or
// cancel.
func (e *Engine) confirmBooking(ctx context.Context, sess *Session) (string, bool) {
	logger := utils.GetLogger()

	conflict, err := e.gateway.HasConflict(ctx, sess.Slots.DoctorName, sess.Slots.Date, sess.Slots.Time)
	if err != nil {
		logger.Error("Conflict check failed", zap.String("sessionId", sess.ID), zap.Error(err))
		return unavailableReply(), false
	}
	if conflict {
		return conflictReply(sess), false
	}

	id, err := e.gateway.CommitBooking(ctx, sess.ToAppointment())
	if err != nil {
		if errors.Is(err, appointment.ErrSlotTaken) {
			return conflictReply(sess), false
		}
		logger.Error("Booking commit failed", zap.String("sessionId", sess.ID), zap.Error(err))
		return unavailableReply(), false
	}

	sess.State = StateBooked
	logger.Info("Chat booking committed",
		zap.String("sessionId", sess.ID),
		zap.String("appointmentId", id))
	return bookedReply(sess, id), true
}
