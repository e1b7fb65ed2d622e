package domain

import (
	"context"
	"time"
)

// CareerStage is a coarser self-reported stage than ExperienceLevel.
// The two ladders are related through a fixed progression table in the
// match package, not derived from each other.
type CareerStage string

const (
	StageStudent     CareerStage = "student"
	StageNewGrad     CareerStage = "new_grad"
	StageExperienced CareerStage = "experienced"
	StageSenior      CareerStage = "senior"
)

type InteractionAction string

const (
	ActionView  InteractionAction = "view"
	ActionSave  InteractionAction = "save"
	ActionApply InteractionAction = "apply"
	ActionShare InteractionAction = "share"
	ActionSkip  InteractionAction = "skip"
)

type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type WorkPreferences struct {
	Remote bool `json:"remote"`
	Hybrid bool `json:"hybrid"`
	OnSite bool `json:"on_site"`
}

// JobInteraction is an append-only behavioral event. The caller creates
// one whenever a user touches a posting; the feedback hook consumes it.
type JobInteraction struct {
	ID        string            `json:"id"`
	JobID     string            `json:"job_id" validate:"required"`
	Action    InteractionAction `json:"action" validate:"required,oneof=view save apply share skip"`
	Timestamp time.Time         `json:"timestamp"`
	TimeSpent float64           `json:"time_spent" validate:"gte=0"` // seconds
	Source    string            `json:"source"`
}

// UserProfile is the identity plus preference state scoring reads from.
// Scoring never mutates a profile; updates flow through the feedback
// hook or external profile edits only.
type UserProfile struct {
	ID                 string           `json:"id"`
	Skills             []string         `json:"skills"`
	ExperienceLevel    ExperienceLevel  `json:"experience_level"`
	PreferredLocations []string         `json:"preferred_locations"`
	PreferredJobTypes  []JobType        `json:"preferred_job_types"`
	SalaryRange        SalaryRange      `json:"salary_range"`
	Industries         []string         `json:"industries"`
	EducationLevel     string           `json:"education_level"`
	CareerInterests    []string         `json:"career_interests"`
	WorkPreferences    WorkPreferences  `json:"work_preferences"`
	CareerStage        CareerStage      `json:"career_stage"`
	ResumeKeywords     []string         `json:"resume_keywords"`
	ViewedJobs         []string         `json:"viewed_jobs"`
	AppliedJobs        []string         `json:"applied_jobs"`
	SavedJobs          []string         `json:"saved_jobs"`
	InteractionHistory []JobInteraction `json:"interaction_history"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
}

type InteractionRepository interface {
	Append(ctx context.Context, userID string, interaction *JobInteraction) error
	RecentByUser(ctx context.Context, userID string, limit int) ([]JobInteraction, error)
}
