package postgres

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// GetByUserID returns nil (not an error) when no profile row exists so
// the usecase can distinguish "missing" from "query failed".
func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT
			user_id, skills, COALESCE(experience_level, ''),
			preferred_locations, preferred_job_types,
			COALESCE(salary_min, 0), COALESCE(salary_max, 0),
			industries, COALESCE(education_level, ''), career_interests,
			COALESCE(pref_remote, false), COALESCE(pref_hybrid, false), COALESCE(pref_on_site, false),
			COALESCE(career_stage, ''), resume_keywords,
			viewed_jobs, applied_jobs, saved_jobs,
			created_at, updated_at
		FROM user_profiles WHERE user_id = $1`

	var p domain.UserProfile
	var skills, locations, jobTypes, industries, interests []string
	var keywords, viewed, applied, saved []string
	var level, stage string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, pq.Array(&skills), &level,
		pq.Array(&locations), pq.Array(&jobTypes),
		&p.SalaryRange.Min, &p.SalaryRange.Max,
		pq.Array(&industries), &p.EducationLevel, pq.Array(&interests),
		&p.WorkPreferences.Remote, &p.WorkPreferences.Hybrid, &p.WorkPreferences.OnSite,
		&stage, pq.Array(&keywords),
		pq.Array(&viewed), pq.Array(&applied), pq.Array(&saved),
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.Skills = skills
	p.ExperienceLevel = domain.ExperienceLevel(level)
	p.PreferredLocations = locations
	p.PreferredJobTypes = make([]domain.JobType, 0, len(jobTypes))
	for _, t := range jobTypes {
		p.PreferredJobTypes = append(p.PreferredJobTypes, domain.JobType(t))
	}
	p.Industries = industries
	p.CareerInterests = interests
	p.CareerStage = domain.CareerStage(stage)
	p.ResumeKeywords = keywords
	p.ViewedJobs = viewed
	p.AppliedJobs = applied
	p.SavedJobs = saved

	return &p, nil
}
