// Package notify delivers sync run reports to operators.
package notify

import (
	"context"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// Notifier sends the outcome of a sync run somewhere a human will see it.
type Notifier interface {
	SendSyncReport(ctx context.Context, report *domain.SyncReport) error
}
