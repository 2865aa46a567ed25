package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent cannot
// express. Applied after migrations and by tests that build schemas without
// golang-migrate.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Open suspensions, for the resume lookup and the timeout sweep.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_agent_suspensions_open
		ON agent_suspensions (run_id, timeout_at)
		WHERE resumed_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create open-suspensions index: %w", err)
	}

	// Scheduled-scan idempotency probe: one scan outcome per automation,
	// action, target and day.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_audit_logs_scan_day
		ON audit_logs (automation_type, action_name, model, record_id, scan_day)
		WHERE scan_day IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create scan-day index: %w", err)
	}

	return nil
}
