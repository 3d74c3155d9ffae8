package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trial-shop/models"
)

// ActionRepository is the Postgres experiment log. Inserts are keyed by record
// ID so a replayed record is stored once.
type ActionRepository struct {
	db *pgxpool.Pool
}

func NewActionRepository(db *pgxpool.Pool) *ActionRepository {
	return &ActionRepository{db: db}
}

func (r *ActionRepository) Name() string { return "postgres" }

func (r *ActionRepository) Append(ctx context.Context, rec models.ActionRecord) error {
	query := `
		INSERT INTO action_logs (id, logged_at, participant_id, action, total_price,
			product_names, quantities, subtotals, room_types, breakfast_options, page)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.Timestamp, rec.ParticipantID, rec.Action, rec.TotalPrice,
		rec.ProductNames, rec.Quantities, rec.Subtotals, rec.RoomTypes, rec.BreakfastOptions, rec.Page,
	)
	if err != nil {
		return fmt.Errorf("insert action log: %w", err)
	}
	return nil
}

// List returns the newest records first, optionally for one participant.
func (r *ActionRepository) List(ctx context.Context, participantID string, limit int) ([]models.ActionRecord, error) {
	if limit < 1 {
		limit = 100
	}

	query := `
		SELECT id::text, logged_at, participant_id, action, total_price,
			product_names, quantities, subtotals, room_types, breakfast_options, page
		FROM action_logs
	`
	args := []interface{}{}
	if participantID != "" {
		query += " WHERE participant_id = $1 ORDER BY logged_at DESC LIMIT $2"
		args = append(args, participantID, limit)
	} else {
		query += " ORDER BY logged_at DESC LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query action logs: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ActionRecord, error) {
		var rec models.ActionRecord
		err := row.Scan(&rec.ID, &rec.Timestamp, &rec.ParticipantID, &rec.Action, &rec.TotalPrice,
			&rec.ProductNames, &rec.Quantities, &rec.Subtotals, &rec.RoomTypes, &rec.BreakfastOptions, &rec.Page)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan action logs: %w", err)
	}
	return records, nil
}
