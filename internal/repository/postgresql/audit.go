package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
)

type auditSinkImpl struct {
	db *database.DB
}

func NewAuditSink(db *database.DB) audit.Sink {
	return &auditSinkImpl{db: db}
}

// Record implements audit.Sink. Events append to the audit_logs table; the
// table has no update or delete path.
func (r *auditSinkImpl) Record(ctx context.Context, event audit.Event) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO audit_logs (
			id, action, entity_type, entity_id, actor_id,
			before_state, after_state, reason, ip_address, user_agent, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
	`

	_, err := q.Exec(ctx, query,
		uuid.NewString(), event.Action, event.EntityType, event.EntityID, event.ActorID,
		audit.Snapshot(event.Before), audit.Snapshot(event.After),
		event.Reason, event.IPAddress, event.UserAgent,
	)
	return err
}
