package domain

import "context"

type RecommendationType string

const (
	RecSkillsMatch     RecommendationType = "skills_match"
	RecExperienceMatch RecommendationType = "experience_match"
	RecLocationMatch   RecommendationType = "location_match"
	RecIndustryMatch   RecommendationType = "industry_match"
	RecTrending        RecommendationType = "trending"
	RecSimilarUsers    RecommendationType = "similar_users"
)

// PersonalizationFactors is the per-factor breakdown shown alongside a
// recommendation. Every field is in [0,1].
type PersonalizationFactors struct {
	SkillsAlignment    float64 `json:"skills_alignment"`
	ExperienceFit      float64 `json:"experience_fit"`
	LocationPreference float64 `json:"location_preference"`
	SalaryMatch        float64 `json:"salary_match"`
	IndustryInterest   float64 `json:"industry_interest"`
	CareerProgression  float64 `json:"career_progression"`
}

// JobRecommendation is engine output, constructed fresh per call and
// never persisted or cached by the engine.
type JobRecommendation struct {
	Job                    Job                    `json:"job"`
	MatchScore             float64                `json:"match_score"`
	MatchReasons           []string               `json:"match_reasons"`
	RecommendationType     RecommendationType     `json:"recommendation_type"`
	ConfidenceScore        float64                `json:"confidence_score"`
	PersonalizationFactors PersonalizationFactors `json:"personalization_factors"`
}

// TrendingJobInsight is a seeded market-demand record, independent of
// any user or job pool. Read-only at runtime.
type TrendingJobInsight struct {
	Skill             string   `json:"skill"`
	DemandGrowth      float64  `json:"demand_growth"` // percentage
	AverageSalary     float64  `json:"average_salary"`
	JobCount          int      `json:"job_count"`
	TrendingCompanies []string `json:"trending_companies"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID string, limit int) ([]JobRecommendation, error)
	PreviewRecommendations(ctx context.Context, profile *UserProfile, jobs []Job, limit int) ([]JobRecommendation, error)
	GetTrending(ctx context.Context) []TrendingJobInsight
	RecordInteraction(ctx context.Context, userID string, interaction *JobInteraction, job *Job) error
}
