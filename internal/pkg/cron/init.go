package cron

import (
	log "log/slog"

	"github.com/pkg/errors"
)

func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return errors.WithMessage(err, "register cron jobs")
	}
	mgr.Start()
	return nil
}
