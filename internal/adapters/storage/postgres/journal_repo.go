package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-shelter-hub/internal/domain/favorites"
)

// JournalRepo persiste el historial de toggles de favoritos.
type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Record(ctx context.Context, e favorites.JournalEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorite_toggle_journal (
			id, user_id,
			kind, entity_id,
			desired, outcome, error,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.UserID,
		string(e.Kind),
		e.EntityID,
		e.Desired,
		string(e.Outcome),
		e.Error,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

func (r *JournalRepo) ListByUser(ctx context.Context, userID string, limit int) ([]favorites.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id,
			kind, entity_id,
			desired, outcome, error,
			created_at
		FROM favorite_toggle_journal
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]favorites.JournalEntry, 0)
	for rows.Next() {
		var e favorites.JournalEntry
		var kind, outcome string
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&kind,
			&e.EntityID,
			&e.Desired,
			&outcome,
			&e.Error,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Kind = favorites.Kind(kind)
		e.Outcome = favorites.Outcome(outcome)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ favorites.Journal = (*JournalRepo)(nil)
