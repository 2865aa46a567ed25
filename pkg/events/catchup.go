package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// EventStore reads persisted events back out of the events table.
// Implements CatchupQuerier for the Hub.
type EventStore struct {
	db *sql.DB
}

// NewEventStore creates an EventStore over the shared connection pool.
func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

// GetCatchupEvents returns events on the channel with id > sinceID, oldest
// first, up to limit rows.
func (s *EventStore) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payload FROM events WHERE channel = $1 AND id > $2 ORDER BY id ASC LIMIT $3`,
		channel, sinceID, limit)
	if err != nil {
		return nil, fmt.Errorf("catchup query failed: %w", err)
	}
	defer rows.Close()

	var events []CatchupEvent
	for rows.Next() {
		var (
			id      int
			rawJSON []byte
		)
		if err := rows.Scan(&id, &rawJSON); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		var payload map[string]interface{}
		if err := json.Unmarshal(rawJSON, &payload); err != nil {
			return nil, fmt.Errorf("event %d has malformed payload: %w", id, err)
		}
		events = append(events, CatchupEvent{ID: id, Payload: payload})
	}
	return events, rows.Err()
}

// DeleteOlderThan removes events older than the cutoff. Used by the
// retention cleanup loop; returns the number of rows deleted.
func (s *EventStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("event cleanup failed: %w", err)
	}
	return res.RowsAffected()
}
