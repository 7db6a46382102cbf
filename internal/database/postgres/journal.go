package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/VineyardSim_Go/internal/eventlog"
)

type journalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository creates a new PostgreSQL game journal repository
func NewJournalRepository(db *pgxpool.Pool) eventlog.Repository {
	return &journalRepository{db: db}
}

// LogEvent stores an event in the journal
func (r *journalRepository) LogEvent(ctx context.Context, eventType, gameID string, payload, metadata map[string]interface{}) error {
	id, err := parseGameUUID(gameID)
	if err != nil {
		return err
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPayload, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPayload, err)
		}
	}

	query := `
		INSERT INTO game_journal (game_id, event_type, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, query, id, eventType, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// GetEvents retrieves journal entries based on filter criteria
func (r *journalRepository) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, game_id, event_type, payload, metadata, created_at
		FROM game_journal
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.GameID != "" {
		id, err := parseGameUUID(filter.GameID)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&queryBuilder, " AND game_id = $%d", argNum)
		args = append(args, id)
		argNum++
	}

	if filter.EventType != "" {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryJournal, err)
	}
	defer rows.Close()

	return scanJournal(rows)
}

// CleanupOldEvents removes entries older than the specified number of days
func (r *journalRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM game_journal
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupJournal, err)
	}
	return result.RowsAffected(), nil
}

func scanJournal(rows pgx.Rows) ([]eventlog.Entry, error) {
	entries := []eventlog.Entry{}

	for rows.Next() {
		var (
			entry                     eventlog.Entry
			gameID                    uuid.UUID
			payloadJSON, metadataJSON []byte
		)
		if err := rows.Scan(&entry.ID, &gameID, &entry.EventType, &payloadJSON, &metadataJSON, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryJournal, err)
		}
		entry.GameID = gameID.String()

		if err := json.Unmarshal(payloadJSON, &entry.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryJournal, err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryJournal, err)
			}
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryJournal, err)
	}
	return entries, nil
}
