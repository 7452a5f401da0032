package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"sort"

	"github.com/mergington-hs/activity-signup/internal/models"
	"github.com/mergington-hs/activity-signup/internal/services"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler renders the server-side activity signup page and processes its
// form submissions.
type Handler struct {
	Service *services.ActivityService
	tmpl    *template.Template
}

// NewHandler parses the page templates and creates the web handler.
func NewHandler(service *services.ActivityService) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %v", err)
	}
	return &Handler{Service: service, tmpl: tmpl}, nil
}

// pageData is everything the activities page template needs.
type pageData struct {
	Activities []models.Activity
	Flash      string
	FlashKind  string // "success" or "error"
}

// ActivitiesPageHandler renders the full activity list: one card per
// activity, one option per activity in the signup select, the remaining
// spots count, and a placeholder where a roster is empty. The page always
// reflects fresh store state.
func (h *Handler) ActivitiesPageHandler(w http.ResponseWriter, r *http.Request) {
	byName, err := h.Service.ListActivities(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to load activities for page render")
		http.Error(w, "Failed to load activities. Please try again later.", http.StatusInternalServerError)
		return
	}

	activities := make([]models.Activity, 0, len(byName))
	for name, a := range byName {
		a.Name = name
		activities = append(activities, a)
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Name < activities[j].Name
	})

	data := pageData{
		Activities: activities,
		Flash:      r.URL.Query().Get("message"),
		FlashKind:  r.URL.Query().Get("kind"),
	}
	if data.FlashKind != "success" && data.FlashKind != "error" {
		data.FlashKind = ""
		data.Flash = ""
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "activities.html", data); err != nil {
		logrus.WithError(err).Error("Failed to render activities page")
	}
}

// SignupFormHandler processes the signup form and redirects back to the
// list page with a flash message. The redirect forces a full re-read of the
// roster.
func (h *Handler) SignupFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	activity := r.PostFormValue("activity")
	email := r.PostFormValue("email")

	if activity == "" || email == "" {
		h.redirectWithFlash(w, r, "Please select an activity and enter your email.", "error")
		return
	}

	message, err := h.Service.Signup(r.Context(), activity, email)
	if err != nil {
		h.redirectWithFlash(w, r, signupErrorMessage(err), "error")
		return
	}
	h.redirectWithFlash(w, r, message, "success")
}

// UnregisterFormHandler processes the per-participant remove control and
// redirects back to the list page.
func (h *Handler) UnregisterFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	activity := r.PostFormValue("activity")
	email := r.PostFormValue("email")

	message, err := h.Service.RemoveParticipant(r.Context(), activity, email)
	if err != nil {
		h.redirectWithFlash(w, r, removalErrorMessage(err), "error")
		return
	}
	h.redirectWithFlash(w, r, message, "success")
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, message, kind string) {
	params := url.Values{}
	params.Set("message", message)
	params.Set("kind", kind)
	http.Redirect(w, r, "/web?"+params.Encode(), http.StatusSeeOther)
}

func signupErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrActivityNotFound):
		return "Activity not found"
	case errors.Is(err, models.ErrAlreadySignedUp):
		return "Student already signed up for this activity"
	default:
		return "Failed to sign up. Please try again."
	}
}

func removalErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrActivityNotFound):
		return "Activity not found"
	case errors.Is(err, models.ErrParticipantNotFound):
		return "Participant not found in this activity"
	default:
		return "Failed to remove participant. Please try again."
	}
}
