package chatbot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway records bookings in memory so conflict behaviour can be driven
// deterministically.
type fakeGateway struct {
	mu      sync.Mutex
	booked  map[string]bool
	commits int

	// Fault injection.
	conflictErr error
	commitErr   error
	// When set, HasConflict always reports a free slot so commit-time
	// conflicts can be exercised.
	skipConflictCheck bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{booked: make(map[string]bool)}
}

func slotKey(doctor, date, timeStr string) string {
	return doctor + "|" + date + "|" + timeStr
}

func (g *fakeGateway) HasConflict(ctx context.Context, doctor, date, timeStr string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.conflictErr != nil {
		return false, g.conflictErr
	}
	if g.skipConflictCheck {
		return false, nil
	}
	return g.booked[slotKey(doctor, date, timeStr)], nil
}

func (g *fakeGateway) CommitBooking(ctx context.Context, appt models.Appointment) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.commitErr != nil {
		return "", g.commitErr
	}
	key := slotKey(appt.DoctorName, appt.Date, appt.Time)
	if g.booked[key] {
		return "", appointment.ErrSlotTaken
	}
	g.booked[key] = true
	g.commits++
	return models.NewID(), nil
}

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestEngine(gw BookingGateway) *Engine {
	// Store-side expiry is disabled so the engine's own inactivity window
	// is what the tests exercise.
	e := NewEngine(NewMemorySessionStore(0), gw, time.Hour)
	e.now = func() time.Time { return testNow }
	return e
}

func drive(t *testing.T, e *Engine, id string, msgs ...string) *models.ChatResponse {
	t.Helper()
	var resp *models.ChatResponse
	for _, m := range msgs {
		var err error
		resp, err = e.Advance(context.Background(), id, m)
		require.NoError(t, err)
	}
	return resp
}

// turnsToConfirmation walks a session from greeting to the confirmation
// summary for the given slot.
func turnsToConfirmation(name, date, timeStr string) []string {
	return []string{
		"hi",
		name,
		"my tooth has been aching for a week",
		"cleaning",
		date,
		timeStr,
		"+1 555 010 2030",
		"Dr. Sarah Johnson",
	}
}

func futureDate(days int) string {
	return testNow.AddDate(0, 0, days).Format("2006-01-02")
}

func TestEngineHappyPath(t *testing.T) {
	gw := newFakeGateway()
	e := newTestEngine(gw)

	resp := drive(t, e, "sess-1", turnsToConfirmation("John Doe", futureDate(7), "10:30")...)
	assert.Equal(t, string(StateConfirmation), resp.State)
	assert.Contains(t, resp.Reply, "John Doe")
	assert.Contains(t, resp.Reply, "10:30")

	resp = drive(t, e, "sess-1", "yes")
	assert.Equal(t, string(StateBooked), resp.State)
	assert.Contains(t, resp.Reply, "booked")
	assert.Equal(t, 1, gw.commits)

	// The finished session is destroyed; the same id starts over.
	_, err := e.store.Get(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	resp = drive(t, e, "sess-1", "hello")
	assert.Equal(t, string(StateGreeting), resp.State)
}

func TestEngineGeneratesSessionID(t *testing.T) {
	e := newTestEngine(newFakeGateway())

	resp, err := e.Advance(context.Background(), "", "hi")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, string(StateGreeting), resp.State)
}

func TestEngineUnknownInputKeepsState(t *testing.T) {
	e := newTestEngine(newFakeGateway())

	drive(t, e, "sess-2", "hi", "Jane", "sore gums", "1")

	// Two nonsense turns in a row: state and slots stay put.
	for i := 0; i < 2; i++ {
		resp := drive(t, e, "sess-2", "whenever suits you")
		assert.Equal(t, string(StateDateSelection), resp.State)
	}

	sess, err := e.store.Get(context.Background(), "sess-2")
	require.NoError(t, err)
	assert.Equal(t, StateDateSelection, sess.State)
	assert.Empty(t, sess.Slots.Date)
	assert.Equal(t, "Jane", sess.Slots.PatientName)
}

func TestEngineValidationFailuresKeepState(t *testing.T) {
	e := newTestEngine(newFakeGateway())
	drive(t, e, "sess-3", "hi", "Jane", "sore gums", "1")

	// Past date, then a date beyond the booking window.
	resp := drive(t, e, "sess-3", "2026-03-01")
	assert.Equal(t, string(StateDateSelection), resp.State)
	assert.Contains(t, resp.Reply, "future")

	resp = drive(t, e, "sess-3", futureDate(91))
	assert.Equal(t, string(StateDateSelection), resp.State)
	assert.Contains(t, resp.Reply, "90 days")

	// Day 90 is still bookable.
	resp = drive(t, e, "sess-3", futureDate(90))
	assert.Equal(t, string(StateTimeSelection), resp.State)

	// Off-grid and after-hours times are rejected, 19:30 is the last slot.
	resp = drive(t, e, "sess-3", "19:45")
	assert.Equal(t, string(StateTimeSelection), resp.State)

	resp = drive(t, e, "sess-3", "20:00")
	assert.Equal(t, string(StateTimeSelection), resp.State)

	resp = drive(t, e, "sess-3", "19:30")
	assert.Equal(t, string(StatePhoneCollection), resp.State)

	// Too-short phone number.
	resp = drive(t, e, "sess-3", "12345")
	assert.Equal(t, string(StatePhoneCollection), resp.State)

	resp = drive(t, e, "sess-3", "+1 555 010 2030")
	assert.Equal(t, string(StateDoctorSelection), resp.State)
}

func TestEngineDoubleBookingConflict(t *testing.T) {
	gw := newFakeGateway()
	e := newTestEngine(gw)
	date := futureDate(7)

	// First caller takes the slot.
	drive(t, e, "first", turnsToConfirmation("John Doe", date, "10:30")...)
	resp := drive(t, e, "first", "yes")
	require.Equal(t, string(StateBooked), resp.State)

	// Second caller reaches confirmation for the same slot.
	drive(t, e, "second", turnsToConfirmation("Mary Poppins", date, "10:30")...)
	resp = drive(t, e, "second", "yes")
	assert.Equal(t, string(StateConfirmation), resp.State)
	assert.Contains(t, resp.Reply, "already booked")
	assert.Equal(t, 1, gw.commits)

	// Confirming again does not slip through either.
	resp = drive(t, e, "second", "yes")
	assert.Equal(t, string(StateConfirmation), resp.State)
	assert.Equal(t, 1, gw.commits)

	resp = drive(t, e, "second", "cancel")
	assert.Equal(t, string(StateCancelled), resp.State)
}

func TestEngineCommitTimeConflict(t *testing.T) {
	// The slot check passes but the commit itself loses the race.
	gw := newFakeGateway()
	gw.skipConflictCheck = true
	gw.booked[slotKey("Dr. Sarah Johnson", futureDate(7), "10:30")] = true
	e := newTestEngine(gw)

	drive(t, e, "racer", turnsToConfirmation("John Doe", futureDate(7), "10:30")...)
	resp := drive(t, e, "racer", "yes")
	assert.Equal(t, string(StateConfirmation), resp.State)
	assert.Contains(t, resp.Reply, "already booked")
	assert.Equal(t, 0, gw.commits)
}

func TestEngineGatewayOutage(t *testing.T) {
	gw := newFakeGateway()
	e := newTestEngine(gw)

	drive(t, e, "sess-4", turnsToConfirmation("John Doe", futureDate(7), "10:30")...)

	gw.conflictErr = errors.New("mongo: connection refused")
	resp := drive(t, e, "sess-4", "yes")
	assert.Equal(t, string(StateConfirmation), resp.State)
	assert.Equal(t, 0, gw.commits)

	// Once storage recovers the same confirmation goes through.
	gw.conflictErr = nil
	resp = drive(t, e, "sess-4", "yes")
	assert.Equal(t, string(StateBooked), resp.State)
	assert.Equal(t, 1, gw.commits)
}

func TestEngineExpiryRestartsSilently(t *testing.T) {
	gw := newFakeGateway()
	e := NewEngine(NewMemorySessionStore(0), gw, time.Hour)
	now := testNow
	e.now = func() time.Time { return now }

	drive(t, e, "sess-5", "hi", "Jane", "sore gums", "1")

	// Two hours of silence blows past the one hour window.
	now = now.Add(2 * time.Hour)

	resp := drive(t, e, "sess-5", "hello")
	assert.Equal(t, string(StateGreeting), resp.State)

	// The restarted session carries nothing over.
	resp = drive(t, e, "sess-5", "Mary")
	assert.Equal(t, string(StateSymptomIntake), resp.State)

	sess, err := e.store.Get(context.Background(), "sess-5")
	require.NoError(t, err)
	assert.Equal(t, "Mary", sess.Slots.PatientName)
	assert.Empty(t, sess.Slots.Problem)
	assert.Empty(t, sess.Slots.Service)
}

func TestEngineCancelFromAnywhere(t *testing.T) {
	e := newTestEngine(newFakeGateway())

	drive(t, e, "sess-6", "hi", "Jane", "sore gums")
	resp := drive(t, e, "sess-6", "cancel")
	assert.Equal(t, string(StateCancelled), resp.State)

	_, err := e.store.Get(context.Background(), "sess-6")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEngineRestartClearsSlots(t *testing.T) {
	e := newTestEngine(newFakeGateway())

	drive(t, e, "sess-7", "hi", "Jane", "sore gums", "1")
	resp := drive(t, e, "sess-7", "restart")
	assert.Equal(t, string(StateGreeting), resp.State)

	sess, err := e.store.Get(context.Background(), "sess-7")
	require.NoError(t, err)
	assert.Equal(t, StateGreeting, sess.State)
	assert.Equal(t, Slots{}, sess.Slots)
}

func TestEngineDenyAtConfirmation(t *testing.T) {
	gw := newFakeGateway()
	e := newTestEngine(gw)

	drive(t, e, "sess-8", turnsToConfirmation("John Doe", futureDate(7), "10:30")...)
	resp := drive(t, e, "sess-8", "no")
	assert.Equal(t, string(StateCancelled), resp.State)
	assert.Equal(t, 0, gw.commits)
}

func TestEngineConcurrentSessions(t *testing.T) {
	gw := newFakeGateway()
	e := newTestEngine(gw)

	var wg sync.WaitGroup
	ids := []string{"c1", "c2", "c3", "c4"}
	for i, id := range ids {
		wg.Add(1)
		go func(id, timeStr string) {
			defer wg.Done()
			drive(t, e, id, turnsToConfirmation("Caller "+id, futureDate(7), timeStr)...)
			drive(t, e, id, "yes")
		}(id, []string{"08:00", "09:30", "11:00", "14:30"}[i])
	}
	wg.Wait()

	assert.Equal(t, len(ids), gw.commits)
}
