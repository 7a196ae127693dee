package notify

import (
	"github.com/sirupsen/logrus"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/config"
)

// Notifier delivers overtime alerts. The engine fires it exactly once per
// threshold crossing; any rate limiting is the implementation's concern.
type Notifier interface {
	Notify(title, body string) error
}

type LogNotifier struct {
	Log *logrus.Logger
}

func (n *LogNotifier) Notify(title, body string) error {
	n.Log.WithField("title", title).Warn(body)
	return nil
}

// FromConfig picks the email notifier when SMTP settings are present and
// falls back to log-only delivery otherwise.
func FromConfig(cfg config.Config, log *logrus.Logger) Notifier {
	if cfg.SmtpConfigured() {
		return &EmailNotifier{
			Config: SmtpConfig{
				Host:     cfg.SmtpHost,
				Port:     cfg.SmtpPort,
				Username: cfg.SmtpUser,
				Password: cfg.SmtpPass,
				From:     cfg.SmtpFrom,
			},
			To:  cfg.AlertRecipient,
			Log: log,
		}
	}
	return &LogNotifier{Log: log}
}
