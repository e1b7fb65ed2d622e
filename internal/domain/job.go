package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// JobType mirrors the posting types users can express a preference for.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
)

// ExperienceLevel is the seniority ladder used by both profiles and postings.
// Ordering matters: scoring measures ordinal distance between levels.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// Job is a posting as the recommendation engine consumes it. The engine
// never mutates a Job; its lifecycle belongs to the store behind JobRepository.
type Job struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Type            JobType         `json:"type"`
	Location        string          `json:"location"`
	Salary          string          `json:"salary"` // free text, may embed numeric ranges
	Description     string          `json:"description"`
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type JobRepository interface {
	GetByID(ctx context.Context, id string) (*Job, error)
	FetchActive(ctx context.Context, limit, offset int) ([]Job, error)
}
