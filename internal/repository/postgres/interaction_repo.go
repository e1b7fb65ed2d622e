package postgres

import (
	"context"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type interactionRepo struct {
	db *pgxpool.Pool
}

func NewInteractionRepository(db *pgxpool.Pool) domain.InteractionRepository {
	return &interactionRepo{db: db}
}

// Append inserts a behavioral event. The table is append-only; events
// are never updated or deleted by this service.
func (r *interactionRepo) Append(ctx context.Context, userID string, interaction *domain.JobInteraction) error {
	query := `INSERT INTO job_interactions (id, user_id, job_id, action, occurred_at, time_spent, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		interaction.ID, userID, interaction.JobID, string(interaction.Action),
		interaction.Timestamp, interaction.TimeSpent, interaction.Source,
	)
	return err
}

func (r *interactionRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]domain.JobInteraction, error) {
	query := `SELECT id, job_id, action, occurred_at, time_spent, COALESCE(source, '')
		FROM job_interactions
		WHERE user_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.JobInteraction
	for rows.Next() {
		var it domain.JobInteraction
		var action string
		if err := rows.Scan(&it.ID, &it.JobID, &action, &it.Timestamp, &it.TimeSpent, &it.Source); err != nil {
			return nil, err
		}
		it.Action = domain.InteractionAction(action)
		history = append(history, it)
	}
	return history, rows.Err()
}
