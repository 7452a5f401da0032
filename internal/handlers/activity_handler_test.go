package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/mergington-hs/activity-signup/internal/models"
	"github.com/mergington-hs/activity-signup/internal/repository"
	"github.com/mergington-hs/activity-signup/internal/services"
	"github.com/mergington-hs/activity-signup/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

// newTestRouter builds the API router over in-memory stores seeded with the
// default roster.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	store := repository.NewInMemoryActivityStore()
	eventService := services.NewRosterEventService(repository.NewInMemoryRosterEventStore())
	service := services.NewActivityService(store, eventService, nil)
	require.NoError(t, service.SeedDefaults(context.Background()))

	handler := NewActivityHandler(service, eventService)

	router := mux.NewRouter()
	router.HandleFunc("/activities", handler.GetActivitiesHandler).Methods("GET")
	router.HandleFunc("/activities/{name}/signup", handler.SignupHandler).Methods("POST")
	router.HandleFunc("/activities/{name}/participants/{email}", handler.RemoveParticipantHandler).Methods("DELETE")
	router.HandleFunc("/activities/{name}/log", handler.GetActivityLogHandler).Methods("GET")
	return router
}

func doRequest(router *mux.Router, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Detail
}

func fetchActivities(t *testing.T, router *mux.Router) map[string]models.Activity {
	t.Helper()
	rr := doRequest(router, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)

	var activities map[string]models.Activity
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&activities))
	return activities
}

func TestGetActivitiesReturnsAll(t *testing.T) {
	router := newTestRouter(t)

	activities := fetchActivities(t, router)
	assert.Len(t, activities, 9)
	assert.Contains(t, activities, "Chess Club")
	assert.Contains(t, activities, "Programming Class")
}

func TestGetActivitiesHaveRequiredFields(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var raw map[string]map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	for name, entry := range raw {
		assert.Contains(t, entry, "description", name)
		assert.Contains(t, entry, "schedule", name)
		assert.Contains(t, entry, "max_participants", name)
		assert.Contains(t, entry, "participants", name)
		assert.IsType(t, []interface{}{}, entry["participants"], name)
	}
}

func TestSignupSuccess(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Contains(t, body.Message, "newstudent@mergington.edu")
	assert.Contains(t, body.Message, "Chess Club")

	activities := fetchActivities(t, router)
	assert.Contains(t, activities["Chess Club"].Participants, "newstudent@mergington.edu")
}

func TestSignupUnknownActivity(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/activities/Nonexistent%20Club/signup?email=student@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Activity not found", decodeDetail(t, rr))
}

func TestSignupDuplicateParticipant(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Student already signed up for this activity", decodeDetail(t, rr))
}

func TestSignupMissingEmail(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/activities/Chess%20Club/signup")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Email is required", decodeDetail(t, rr))
}

func TestSignupWithEncodedActivityName(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodPost, "/activities/Track%20and%20Field/signup?email=newrunner@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	activities := fetchActivities(t, router)
	assert.Contains(t, activities["Track and Field"].Participants, "newrunner@mergington.edu")
}

func TestRemoveParticipantSuccess(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodDelete, "/activities/Chess%20Club/participants/michael@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Contains(t, body.Message, "michael@mergington.edu")

	activities := fetchActivities(t, router)
	assert.NotContains(t, activities["Chess Club"].Participants, "michael@mergington.edu")
}

func TestRemoveParticipantUnknownActivity(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodDelete, "/activities/Nonexistent%20Club/participants/student@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Activity not found", decodeDetail(t, rr))
}

func TestRemoveUnknownParticipant(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodDelete, "/activities/Chess%20Club/participants/notregistered@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Participant not found in this activity", decodeDetail(t, rr))

	activities := fetchActivities(t, router)
	assert.Len(t, activities["Chess Club"].Participants, 2)
}

func TestRemoveParticipantWithEncoding(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodDelete, "/activities/Track%20and%20Field/participants/ava%40mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestActivityLogRecordsMutations(t *testing.T) {
	router := newTestRouter(t)

	doRequest(router, http.MethodPost, "/activities/Chess%20Club/signup?email=audit@mergington.edu")
	doRequest(router, http.MethodDelete, "/activities/Chess%20Club/participants/audit@mergington.edu")

	rr := doRequest(router, http.MethodGet, "/activities/Chess%20Club/log")
	require.Equal(t, http.StatusOK, rr.Code)

	var events []models.RosterEvent
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&events))
	require.Len(t, events, 2)
	// newest first
	assert.Equal(t, models.RosterActionRemoval, events[0].Action)
	assert.Equal(t, models.RosterActionSignup, events[1].Action)
}

func TestActivityLogUnknownActivity(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(router, http.MethodGet, "/activities/Nonexistent%20Club/log")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Activity not found", decodeDetail(t, rr))
}
