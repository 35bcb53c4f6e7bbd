package notify

import (
	"context"
	"log/slog"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded reports. It is used
// when no Discord webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards reports with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendSyncReport logs and discards the report.
func (n *NoOpNotifier) SendSyncReport(_ context.Context, report *domain.SyncReport) error {
	n.log.Debug("sync report discarded (no backend configured)",
		"status", report.Status,
		"total", report.Stats.Total,
	)
	return nil
}
