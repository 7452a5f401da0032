package jobs

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mergington-hs/activity-signup/internal/models"
	"github.com/mergington-hs/activity-signup/internal/services"
	"github.com/sirupsen/logrus"
)

// Mailer delivers the digest email. Satisfied by pkg/email.Sender.
type Mailer interface {
	Send(to, subject, body string) error
}

// RosterDigest summarizes the roster events of the last day and mails the
// summary to the organizer.
type RosterDigest struct {
	Events         *services.RosterEventService
	Mailer         Mailer
	OrganizerEmail string
}

// NewRosterDigest creates a new instance of RosterDigest.
func NewRosterDigest(events *services.RosterEventService, mailer Mailer, organizerEmail string) *RosterDigest {
	return &RosterDigest{
		Events:         events,
		Mailer:         mailer,
		OrganizerEmail: organizerEmail,
	}
}

// Run builds the digest for the past 24 hours. The summary is always logged;
// it is only emailed when an organizer address is configured.
func (d *RosterDigest) Run(ctx context.Context) error {
	since := time.Now().Add(-24 * time.Hour)
	events, err := d.Events.EventsSince(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to fetch roster events: %v", err)
	}

	activities := make(map[string]struct{})
	for _, e := range events {
		activities[e.Activity] = struct{}{}
	}

	summary := d.Summarize(events)
	logrus.WithFields(logrus.Fields{
		"events":     len(events),
		"activities": len(activities),
	}).Info("Daily roster digest completed")

	if len(events) == 0 || d.OrganizerEmail == "" || d.Mailer == nil {
		return nil
	}

	subject := fmt.Sprintf("Activity roster digest for %s", time.Now().Format("Jan 2"))
	if err := d.Mailer.Send(d.OrganizerEmail, subject, summary); err != nil {
		logrus.WithError(err).Error("Failed to send roster digest email")
		return err
	}

	logrus.WithField("to", d.OrganizerEmail).Info("Roster digest emailed")
	return nil
}

// Summarize renders per-activity signup/removal counts as plain text.
func (d *RosterDigest) Summarize(events []models.RosterEvent) string {
	if len(events) == 0 {
		return "No roster changes in the last 24 hours."
	}

	type tally struct {
		signups  int
		removals int
	}
	byActivity := make(map[string]*tally)
	for _, e := range events {
		t, ok := byActivity[e.Activity]
		if !ok {
			t = &tally{}
			byActivity[e.Activity] = t
		}
		switch e.Action {
		case models.RosterActionSignup:
			t.signups++
		case models.RosterActionRemoval:
			t.removals++
		}
	}

	names := make([]string, 0, len(byActivity))
	for name := range byActivity {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Roster changes in the last 24 hours:\n")
	for _, name := range names {
		t := byActivity[name]
		fmt.Fprintf(&b, "%s: %d signups, %d removals\n", name, t.signups, t.removals)
	}
	return b.String()
}
