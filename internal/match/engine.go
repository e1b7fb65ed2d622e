package match

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go-jobmatch-backend/internal/domain"
)

// Contract violations surfaced to callers. Sparse or malformed profile
// data is never an error — it degrades to neutral scoring instead.
var (
	ErrNilProfile   = errors.New("match: profile is required")
	ErrInvalidLimit = errors.New("match: limit must be positive")
)

// Config carries the engine tunables. Zero values fall back to the
// documented defaults in NewEngine.
type Config struct {
	// MinScore is the admission threshold: jobs scoring at or below it
	// never appear in output. Default 0.3.
	MinScore float64
	// DiversityHighScore gates the first diversification pass. Default 0.7.
	DiversityHighScore float64
	// DiversityCap bounds the first, one-per-company pass. Default 10.
	DiversityCap int
	// ResultCap bounds the diversified pool before the final truncation
	// to the caller's limit. Default 20.
	ResultCap int
}

// Engine ranks a job pool against a user profile. It is stateless and
// safe for concurrent use; every call computes from its inputs alone.
type Engine struct {
	scorer           *Scorer
	trends           []domain.TrendingJobInsight
	trendingKeywords []string
	cfg              Config
}

func NewEngine(scorer *Scorer, trends []domain.TrendingJobInsight, trendingKeywords []string, cfg Config) *Engine {
	if cfg.MinScore == 0 {
		cfg.MinScore = 0.3
	}
	if cfg.DiversityHighScore == 0 {
		cfg.DiversityHighScore = 0.7
	}
	if cfg.DiversityCap == 0 {
		cfg.DiversityCap = 10
	}
	if cfg.ResultCap == 0 {
		cfg.ResultCap = 20
	}
	return &Engine{
		scorer:           scorer,
		trends:           trends,
		trendingKeywords: trendingKeywords,
		cfg:              cfg,
	}
}

// Recommend scores every posting the user has not already applied to,
// drops those at or below the admission threshold, diversifies by
// company, and returns at most limit results sorted descending by match
// score. Equal scores keep their original pool order.
func (e *Engine) Recommend(user *domain.UserProfile, jobs []domain.Job, limit int) ([]domain.JobRecommendation, error) {
	if user == nil {
		return nil, ErrNilProfile
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	applied := make(map[string]bool, len(user.AppliedJobs))
	for _, id := range user.AppliedJobs {
		applied[id] = true
	}

	recs := make([]domain.JobRecommendation, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if applied[job.ID] {
			continue
		}

		score := e.scorer.Score(user, job)
		if score <= e.cfg.MinScore {
			continue
		}

		recs = append(recs, domain.JobRecommendation{
			Job:                    *job,
			MatchScore:             score,
			MatchReasons:           e.matchReasons(user, job),
			RecommendationType:     e.recommendationType(user, job),
			ConfidenceScore:        e.confidenceScore(user, job),
			PersonalizationFactors: e.scorer.Factors(user, job),
		})
	}

	recs = e.diversify(recs)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// diversify keeps one posting per company among the high scorers so a
// single employer's many postings cannot crowd the top of the list.
// Pass one greedily takes high-scoring jobs from companies not yet seen,
// up to DiversityCap. Pass two fills remaining slots up to ResultCap in
// original order — duplicate employers are allowed there on purpose, to
// avoid under-filling results.
func (e *Engine) diversify(recs []domain.JobRecommendation) []domain.JobRecommendation {
	out := make([]domain.JobRecommendation, 0, e.cfg.ResultCap)
	taken := make(map[int]bool, e.cfg.ResultCap)
	companySeen := make(map[string]bool)

	for i, rec := range recs {
		if len(out) >= e.cfg.DiversityCap {
			break
		}
		if rec.MatchScore > e.cfg.DiversityHighScore && !companySeen[rec.Job.Company] {
			out = append(out, rec)
			taken[i] = true
			companySeen[rec.Job.Company] = true
		}
	}

	for i, rec := range recs {
		if len(out) >= e.cfg.ResultCap {
			break
		}
		if !taken[i] {
			out = append(out, rec)
			taken[i] = true
		}
	}
	return out
}

// matchReasons builds the short human-readable list shown on a
// recommendation card. Each reason is appended conditionally, in a fixed
// order, so the most specific signals come first.
func (e *Engine) matchReasons(user *domain.UserProfile, job *domain.Job) []string {
	var reasons []string

	var overlapping []string
	for _, jobSkill := range job.Skills {
		js := normalize(jobSkill)
		for _, userSkill := range user.Skills {
			us := normalize(userSkill)
			if strings.Contains(js, us) || strings.Contains(us, js) {
				overlapping = append(overlapping, jobSkill)
				break
			}
		}
	}
	if len(overlapping) > 0 {
		if len(overlapping) > 3 {
			overlapping = overlapping[:3]
		}
		reasons = append(reasons, fmt.Sprintf("Strong match for your %s skills", strings.Join(overlapping, ", ")))
	}

	if user.ExperienceLevel == job.ExperienceLevel {
		reasons = append(reasons, fmt.Sprintf("Perfect fit for your %s experience level", user.ExperienceLevel))
	}

	jobLoc := strings.ToLower(job.Location)
	for _, loc := range user.PreferredLocations {
		if strings.Contains(jobLoc, strings.ToLower(loc)) {
			reasons = append(reasons, fmt.Sprintf("Located in your preferred area: %s", job.Location))
			break
		}
	}

	for _, t := range user.PreferredJobTypes {
		if t == job.Type {
			reasons = append(reasons, fmt.Sprintf("Matches your %s preference", job.Type))
			break
		}
	}

	text := strings.ToLower(job.Title + " " + job.Description)
	for _, industry := range user.Industries {
		if strings.Contains(text, strings.ToLower(industry)) {
			reasons = append(reasons, "Aligns with your interest in the industry")
			break
		}
	}

	if e.isTrending(job) {
		reasons = append(reasons, "High-demand role with growing opportunities")
	}

	return reasons
}

// recommendationType classifies the dominant signal behind a
// recommendation. Exactly one type is assigned, by priority.
func (e *Engine) recommendationType(user *domain.UserProfile, job *domain.Job) domain.RecommendationType {
	if e.scorer.SkillsMatch(user, job) > 0.8 {
		return domain.RecSkillsMatch
	}
	if e.scorer.ExperienceMatch(user.ExperienceLevel, job.ExperienceLevel) > 0.8 {
		return domain.RecExperienceMatch
	}
	jobLoc := strings.ToLower(job.Location)
	for _, loc := range user.PreferredLocations {
		if strings.Contains(jobLoc, strings.ToLower(loc)) {
			return domain.RecLocationMatch
		}
	}
	if e.isTrending(job) {
		return domain.RecTrending
	}
	return domain.RecIndustryMatch
}

// confidenceScore estimates how much input signal backed the match,
// independent of match quality: richer profiles and better-described
// postings score higher.
func (e *Engine) confidenceScore(user *domain.UserProfile, job *domain.Job) float64 {
	score := 0.1
	if len(user.Skills) > 3 {
		score = 0.2
	}
	if len(user.InteractionHistory) > 10 {
		score += 0.3
	} else {
		score += 0.15
	}
	if len(user.PreferredLocations) > 0 {
		score += 0.2
	} else {
		score += 0.1
	}
	if len(job.Skills) > 2 {
		score += 0.3
	} else {
		score += 0.15
	}
	if score > 1 {
		return 1
	}
	return score
}

func (e *Engine) isTrending(job *domain.Job) bool {
	text := strings.ToLower(job.Title + " " + job.Description)
	for _, kw := range e.trendingKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Trending returns the top 10 seeded insights by demand growth.
func (e *Engine) Trending() []domain.TrendingJobInsight {
	out := make([]domain.TrendingJobInsight, len(e.trends))
	copy(out, e.trends)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DemandGrowth > out[j].DemandGrowth
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}
