package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmh06md-hub/Dental-Clinic-V2/models"
	"github.com/mmh06md-hub/Dental-Clinic-V2/services/chatbot"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct{}

func (stubGateway) HasConflict(ctx context.Context, doctor, date, timeStr string) (bool, error) {
	return false, nil
}

func (stubGateway) CommitBooking(ctx context.Context, appt models.Appointment) (string, error) {
	return "appt-test", nil
}

func newChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := chatbot.NewEngine(chatbot.NewMemorySessionStore(time.Hour), stubGateway{}, time.Hour)
	h := &ChatHandler{Engine: engine}

	r := gin.New()
	r.POST("/api/chat", h.ChatHandlerFunc)
	return r
}

func postChat(t *testing.T, r *gin.Engine, req models.ChatRequest) (*httptest.ResponseRecorder, models.ChatResponse) {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)

	var resp models.ChatResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestChatHandlerStartsSession(t *testing.T) {
	r := newChatRouter()

	w, resp := postChat(t, r, models.ChatRequest{Message: "hi"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, string(chatbot.StateGreeting), resp.State)
	assert.NotEmpty(t, resp.Reply)
}

func TestChatHandlerContinuesSession(t *testing.T) {
	r := newChatRouter()

	_, first := postChat(t, r, models.ChatRequest{Message: "hi"})
	w, second := postChat(t, r, models.ChatRequest{SessionID: first.SessionID, Message: "John Doe"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, string(chatbot.StateSymptomIntake), second.State)
}

func TestChatHandlerRejectsBadPayload(t *testing.T) {
	r := newChatRouter()

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("{not json")))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
