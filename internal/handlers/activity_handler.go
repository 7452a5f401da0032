package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mergington-hs/activity-signup/internal/models"
	"github.com/mergington-hs/activity-signup/internal/services"
	"github.com/sirupsen/logrus"
)

// ActivityHandler handles HTTP requests related to activities.
type ActivityHandler struct {
	Service *services.ActivityService
	Events  *services.RosterEventService
}

// NewActivityHandler creates a new instance of ActivityHandler.
func NewActivityHandler(service *services.ActivityService, events *services.RosterEventService) *ActivityHandler {
	return &ActivityHandler{
		Service: service,
		Events:  events,
	}
}

// respondJSON writes a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondDetail writes an application error the way the frontend expects:
// a JSON object with a single "detail" field.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// GetActivitiesHandler handles fetching the full activity roster as a JSON
// object keyed by activity name.
func (h *ActivityHandler) GetActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Service.ListActivities(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch activities")
		respondDetail(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	logrus.WithField("count", len(activities)).Info("Activities fetched")
	respondJSON(w, http.StatusOK, activities)
}

// SignupHandler handles signing a student up for an activity. The student's
// email arrives as a query parameter, matching the frontend's request shape.
func (h *ActivityHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	email := r.URL.Query().Get("email")
	if email == "" {
		logrus.WithField("activity", name).Warn("Signup attempt without email")
		respondDetail(w, http.StatusBadRequest, "Email is required")
		return
	}

	message, err := h.Service.Signup(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrActivityNotFound):
			respondDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, models.ErrAlreadySignedUp):
			respondDetail(w, http.StatusBadRequest, "Student already signed up for this activity")
		default:
			logrus.WithError(err).WithField("activity", name).Error("Signup failed")
			respondDetail(w, http.StatusInternalServerError, "Failed to sign up")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// RemoveParticipantHandler handles removing a participant from an activity.
func (h *ActivityHandler) RemoveParticipantHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]
	email := vars["email"]

	message, err := h.Service.RemoveParticipant(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrActivityNotFound):
			respondDetail(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, models.ErrParticipantNotFound):
			respondDetail(w, http.StatusNotFound, "Participant not found in this activity")
		default:
			logrus.WithError(err).WithField("activity", name).Error("Removal failed")
			respondDetail(w, http.StatusInternalServerError, "Failed to remove participant")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// GetActivityLogHandler handles fetching the recent roster events for an
// activity, with an optional limit.
func (h *ActivityHandler) GetActivityLogHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	var limit int64 = 20
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.ParseInt(limitParam, 10, 64)
		if err == nil && parsed > 0 {
			limit = parsed
		} else {
			logrus.WithField("limit", limitParam).Warn("Invalid limit query param")
		}
	}

	// Unknown activities get a 404 rather than an empty log.
	if _, err := h.Service.GetActivity(r.Context(), name); err != nil {
		if errors.Is(err, models.ErrActivityNotFound) {
			respondDetail(w, http.StatusNotFound, "Activity not found")
			return
		}
		logrus.WithError(err).WithField("activity", name).Error("Failed to fetch activity")
		respondDetail(w, http.StatusInternalServerError, "Failed to fetch activity log")
		return
	}

	events, err := h.Events.RecentEvents(r.Context(), name, limit)
	if err != nil {
		logrus.WithError(err).WithField("activity", name).Error("Failed to fetch roster events")
		respondDetail(w, http.StatusInternalServerError, "Failed to fetch activity log")
		return
	}

	respondJSON(w, http.StatusOK, events)
}
