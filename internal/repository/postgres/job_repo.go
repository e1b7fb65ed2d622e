package postgres

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company, COALESCE(type, ''), COALESCE(location, ''),
	COALESCE(salary, ''), COALESCE(description, ''), skills,
	COALESCE(experience_level, ''), created_at, updated_at`

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// FetchActive returns the open postings pool in stable posting order.
// Ranking happens downstream; this is a plain data-access read.
func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
		WHERE status = 'active'
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var jobType, level string
	var skills []string

	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &jobType, &job.Location,
		&job.Salary, &job.Description, pq.Array(&skills),
		&level, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	job.Type = domain.JobType(jobType)
	job.ExperienceLevel = domain.ExperienceLevel(level)
	job.Skills = skills
	return &job, nil
}
