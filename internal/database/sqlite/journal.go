package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/eventlog"
)

type journalRepository struct {
	db *DB
}

// NewJournalRepository creates a SQLite-backed game journal repository
func NewJournalRepository(db *DB) eventlog.Repository {
	return &journalRepository{db: db}
}

type journalRow struct {
	ID        int64          `db:"id"`
	GameID    string         `db:"game_id"`
	EventType string         `db:"event_type"`
	Payload   string         `db:"payload"`
	Metadata  sql.NullString `db:"metadata"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *journalRepository) LogEvent(ctx context.Context, eventType, gameID string, payload, metadata map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	var meta sql.NullString
	if metadata != nil {
		metaJSON, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		meta = sql.NullString{String: string(metaJSON), Valid: true}
	}

	_, err = r.db.conn.ExecContext(ctx,
		"INSERT INTO game_journal (game_id, event_type, payload, metadata, created_at) VALUES (?, ?, ?, ?, ?)",
		gameID, eventType, string(payloadJSON), meta, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

func (r *journalRepository) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.GameID != "" {
		where = append(where, "game_id = ?")
		args = append(args, filter.GameID)
	}
	if filter.EventType != "" {
		where = append(where, "event_type = ?")
		args = append(args, filter.EventType)
	}
	if filter.Since != nil {
		where = append(where, "created_at >= ?")
		args = append(args, filter.Since.UTC())
	}

	query := "SELECT id, game_id, event_type, payload, metadata, created_at FROM game_journal"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var rows []journalRow
	if err := r.db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}

	entries := make([]eventlog.Entry, 0, len(rows))
	for _, row := range rows {
		entry := eventlog.Entry{
			ID:        row.ID,
			GameID:    row.GameID,
			EventType: row.EventType,
			CreatedAt: row.CreatedAt,
		}
		if err := json.Unmarshal([]byte(row.Payload), &entry.Payload); err != nil {
			return nil, fmt.Errorf("decode payload %d: %w", row.ID, err)
		}
		if row.Metadata.Valid {
			if err := json.Unmarshal([]byte(row.Metadata.String), &entry.Metadata); err != nil {
				return nil, fmt.Errorf("decode metadata %d: %w", row.ID, err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *journalRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	res, err := r.db.conn.ExecContext(ctx, "DELETE FROM game_journal WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup journal: %w", err)
	}
	return res.RowsAffected()
}
