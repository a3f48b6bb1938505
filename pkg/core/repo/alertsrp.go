package repo

import (
	"context"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type AlertsConnQueryer interface {
	AlertsQueryer
}

type AlertsTxQueryer interface {
	AlertsQueryer
}

// AlertsQueryer exposes the emergency alerts store.
type AlertsQueryer interface {
	List(ctx context.Context) ([]model.EmergencyAlert, error)
	ListByStatus(ctx context.Context, s model.AlertStatus) ([]model.EmergencyAlert, error)
	Create(ctx context.Context, a *model.EmergencyAlert) error
}

type Alerts interface {
	Conn(Conn) AlertsConnQueryer
	Tx(Tx) AlertsTxQueryer
}
