package cron

import (
	"context"

	"github.com/mergington-hs/activity-signup/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartDigestCron schedules the daily roster digest.
func StartDigestCron(digest *jobs.RosterDigest) {
	c := cron.New()

	c.AddFunc("@daily", func() {
		if err := digest.Run(context.Background()); err != nil {
			logrus.WithError(err).Error("Roster digest run failed")
		}
	})

	c.Start()
}
