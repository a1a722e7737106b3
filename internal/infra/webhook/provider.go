package webhook

import (
	"log/slog"

	"petnfc/config"
	"petnfc/internal/domain/service"
	"petnfc/internal/util"
)

// NewAlertDispatcher builds the dispatcher from configuration. Without a webhook URL
// alerts are simulated.
func NewAlertDispatcher(cfg *config.Config, logger *slog.Logger) service.AlertDispatcher {
	notify := cfg.Notify
	simulate := notify.WebhookURL == ""

	if simulate {
		logger.Warn("Notification webhook URL not configured, owner alerts run in simulation mode")
	} else {
		logger.Info("Owner alerts will be sent to webhook",
			slog.String("url", util.RedactURL(notify.WebhookURL)),
			slog.Duration("timeout", notify.Timeout),
		)
	}

	return NewDispatcher(Options{
		URL:      notify.WebhookURL,
		Timeout:  notify.Timeout,
		Source:   notify.Source,
		Simulate: simulate,
	}, logger)
}
