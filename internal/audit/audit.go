package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Event types recorded by the gateway. Assessment events carry the
// instrument kind only; scores and feedback never leave their session.
const (
	TypePostCreated         = "PostCreated"
	TypePostDeleted         = "PostDeleted"
	TypePostPinned          = "PostPinned"
	TypeReplyCreated        = "ReplyCreated"
	TypeReplyDeleted        = "ReplyDeleted"
	TypeUserRegistered      = "UserRegistered"
	TypeAssessmentCompleted = "AssessmentCompleted"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// EventRepo is an append-only log over the event_log table.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// Append writes one event. Callers treat failures as non-fatal; the log is
// observational, not transactional.
func (r *EventRepo) Append(ctx context.Context, typ, key string, data any) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		typ, key, string(buf), time.Now().Unix())
	return err
}

// Since returns up to limit events with offset greater than after, oldest
// first. Used by the admin events endpoint.
func (r *EventRepo) Since(ctx context.Context, after int64, limit int) ([]Event, error) {
	if limit <= 0 || limit > 500 {
		limit = 500
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT offset_id, typ, key, data, created_at
		   FROM event_log WHERE offset_id > $1
		  ORDER BY offset_id ASC LIMIT $2`, after, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Offset, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
