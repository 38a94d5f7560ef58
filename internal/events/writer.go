package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"containermap/internal/domain"
	"containermap/internal/engine"
)

// Writer appends audit events to the events table of a migrated database.
type Writer struct {
	DB  *sql.DB
	Now func() time.Time
}

type EventPayload map[string]any

type Event struct {
	ID         int64        `json:"id"`
	TS         string       `json:"ts"`
	Type       string       `json:"type"`
	EntityKind string       `json:"entity_kind"`
	EntityID   string       `json:"entity_id,omitempty"`
	Payload    EventPayload `json:"payload"`
}

// Append inserts one event within tx.
func (w Writer) Append(ctx context.Context, tx *sql.Tx, evtType, entityKind, entityID string, payload EventPayload) error {
	if w.Now == nil {
		w.Now = time.Now
	}
	ts := w.Now().UTC().Format(time.RFC3339)
	if payload == nil {
		payload = EventPayload{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO events(ts,type,entity_kind,entity_id,payload_json) VALUES (?,?,?,?,?)`,
		ts, evtType, entityKind, nullable(entityID), string(data))
	return err
}

// AppendResult records the outcome of one mapping invocation in its own
// transaction.
func (w Writer) AppendResult(ctx context.Context, src *domain.SourceContainer, res engine.Result) error {
	if w.DB == nil {
		return errors.New("event writer has no database")
	}
	payload := EventPayload{"source": src}
	switch res.Outcome {
	case engine.Rejected:
		payload["errors"] = res.Errors
	case engine.Accepted:
		payload["subcontainer"] = res.Subcontainer
		if tc := res.Subcontainer.TopContainer(); tc != nil {
			payload["top_container_reused"] = !tc.ID().IsNew()
		}
	}
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := w.Append(ctx, tx, "mapping."+string(res.Outcome), "source_container", src.Barcode1(), payload); err != nil {
		return err
	}
	return tx.Commit()
}

// List returns events oldest first. An empty evtType matches every type and a
// limit of zero or less means no limit.
func (w Writer) List(ctx context.Context, evtType string, limit int) ([]Event, error) {
	if w.DB == nil {
		return nil, errors.New("event writer has no database")
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := w.DB.QueryContext(ctx, `SELECT id,ts,type,entity_kind,entity_id,payload_json FROM events
		WHERE (? = '' OR type = ?) ORDER BY id LIMIT ?`, evtType, evtType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var evt Event
		var entityID sql.NullString
		var payload string
		if err := rows.Scan(&evt.ID, &evt.TS, &evt.Type, &evt.EntityKind, &entityID, &payload); err != nil {
			return nil, err
		}
		evt.EntityID = entityID.String
		if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
			return nil, fmt.Errorf("event %d payload: %w", evt.ID, err)
		}
		out = append(out, evt)
	}
	return out, rows.Err()
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
