package match_test

import (
	"fmt"
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *match.Engine {
	return match.NewEngine(newScorer(), match.DefaultTrends(), match.DefaultTrendingKeywords(), match.Config{})
}

func frontendProfile() *domain.UserProfile {
	return &domain.UserProfile{
		ID:                 "user-1",
		Skills:             []string{"React", "TypeScript", "JavaScript", "CSS"},
		ExperienceLevel:    domain.LevelEntry,
		PreferredLocations: []string{"Auckland, NZ"},
		PreferredJobTypes:  []domain.JobType{domain.JobTypeFullTime},
		SalaryRange:        domain.SalaryRange{Min: 50000, Max: 90000},
		Industries:         []string{"technology"},
	}
}

func frontendJob() domain.Job {
	return domain.Job{
		ID:              "job-1",
		Title:           "Frontend React Developer",
		Company:         "Kiwi Software",
		Type:            domain.JobTypeFullTime,
		Location:        "Auckland, NZ",
		Salary:          "$60,000 - $80,000",
		Description:     "Build delightful interfaces with React and TypeScript",
		Skills:          []string{"React", "JavaScript", "TypeScript", "CSS"},
		ExperienceLevel: domain.LevelEntry,
	}
}

func cobolJob() domain.Job {
	return domain.Job{
		ID:              "job-2",
		Title:           "Mainframe Systems Programmer",
		Company:         "Legacy Corp",
		Type:            domain.JobTypeContract,
		Location:        "Zurich, CH",
		Salary:          "$150,000 - $200,000",
		Description:     "Maintain COBOL batch systems",
		Skills:          []string{"COBOL", "Mainframe"},
		ExperienceLevel: domain.LevelExecutive,
	}
}

func TestRecommendContractViolations(t *testing.T) {
	engine := newEngine()

	_, err := engine.Recommend(nil, nil, 5)
	assert.ErrorIs(t, err, match.ErrNilProfile)

	_, err = engine.Recommend(frontendProfile(), nil, 0)
	assert.ErrorIs(t, err, match.ErrInvalidLimit)
}

func TestRecommendEmptyPool(t *testing.T) {
	recs, err := newEngine().Recommend(frontendProfile(), nil, 5)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendHighMatch(t *testing.T) {
	engine := newEngine()

	recs, err := engine.Recommend(frontendProfile(), []domain.Job{frontendJob()}, 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Greater(t, rec.MatchScore, 0.85)
	assert.Contains(t, []domain.RecommendationType{domain.RecSkillsMatch, domain.RecExperienceMatch}, rec.RecommendationType)

	require.NotEmpty(t, rec.MatchReasons)
	assert.Contains(t, rec.MatchReasons[0], "React")
	assert.Contains(t, rec.MatchReasons[0], "TypeScript")

	assert.GreaterOrEqual(t, rec.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, rec.ConfidenceScore, 1.0)
}

func TestRecommendExcludesPoorMatches(t *testing.T) {
	engine := newEngine()

	recs, err := engine.Recommend(frontendProfile(), []domain.Job{cobolJob()}, 5)
	require.NoError(t, err)
	assert.Empty(t, recs, "a job below the admission threshold must not appear at all")
}

func TestRecommendExcludesAppliedJobs(t *testing.T) {
	engine := newEngine()
	user := frontendProfile()
	user.AppliedJobs = []string{"job-1"}

	recs, err := engine.Recommend(user, []domain.Job{frontendJob()}, 5)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendSortedAndLimited(t *testing.T) {
	engine := newEngine()
	user := frontendProfile()

	var jobs []domain.Job
	for i := 0; i < 8; i++ {
		job := frontendJob()
		job.ID = fmt.Sprintf("job-%d", i)
		job.Company = fmt.Sprintf("Company %d", i)
		if i%2 == 1 {
			// degrade half the pool a little
			job.Location = "Wellington, NZ"
		}
		jobs = append(jobs, job)
	}

	recs, err := engine.Recommend(user, jobs, 5)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(recs), 5)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
}

func TestRecommendStableOnTies(t *testing.T) {
	engine := newEngine()
	user := frontendProfile()

	var jobs []domain.Job
	for i := 0; i < 4; i++ {
		job := frontendJob()
		job.ID = fmt.Sprintf("job-%d", i)
		job.Company = fmt.Sprintf("Company %d", i)
		jobs = append(jobs, job)
	}

	recs, err := engine.Recommend(user, jobs, 10)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	for i, rec := range recs {
		assert.Equal(t, fmt.Sprintf("job-%d", i), rec.Job.ID, "equal scores must keep pool order")
	}
}

func TestRecommendIdempotent(t *testing.T) {
	engine := newEngine()
	user := frontendProfile()
	jobs := []domain.Job{frontendJob(), cobolJob()}

	first, err := engine.Recommend(user, jobs, 5)
	require.NoError(t, err)
	second, err := engine.Recommend(user, jobs, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDiversification(t *testing.T) {
	engine := newEngine()
	user := frontendProfile()

	// 15 strong postings from one company, then strong postings from others.
	var jobs []domain.Job
	for i := 0; i < 15; i++ {
		job := frontendJob()
		job.ID = fmt.Sprintf("mono-%d", i)
		jobs = append(jobs, job)
	}
	for i := 0; i < 5; i++ {
		job := frontendJob()
		job.ID = fmt.Sprintf("other-%d", i)
		job.Company = fmt.Sprintf("Studio %d", i)
		jobs = append(jobs, job)
	}

	recs, err := engine.Recommend(user, jobs, 20)
	require.NoError(t, err)

	// The one-per-company pass admits Kiwi Software once plus the five
	// studios; the fill pass then allows the duplicates back in.
	companies := map[string]int{}
	for _, rec := range recs {
		companies[rec.Job.Company]++
	}
	assert.Equal(t, 6, len(companies))
	assert.LessOrEqual(t, len(recs), 20)

	// Every distinct company survives diversification.
	for i := 0; i < 5; i++ {
		assert.Contains(t, companies, fmt.Sprintf("Studio %d", i))
	}
}

func TestTrending(t *testing.T) {
	engine := newEngine()

	insights := engine.Trending()
	assert.LessOrEqual(t, len(insights), 10)
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(t, insights[i-1].DemandGrowth, insights[i].DemandGrowth)
	}
	// Seeded table: AI/ML leads at 45% growth.
	require.NotEmpty(t, insights)
	assert.Equal(t, "AI/Machine Learning", insights[0].Skill)
}

func TestTrendingCapsAtTen(t *testing.T) {
	trends := make([]domain.TrendingJobInsight, 14)
	for i := range trends {
		trends[i] = domain.TrendingJobInsight{Skill: fmt.Sprintf("skill-%d", i), DemandGrowth: float64(i)}
	}
	engine := match.NewEngine(newScorer(), trends, nil, match.Config{})

	insights := engine.Trending()
	require.Len(t, insights, 10)
	assert.Equal(t, "skill-13", insights[0].Skill)
}

func TestClassifySignal(t *testing.T) {
	assert.Equal(t, match.SignalPositive, match.ClassifySignal(&domain.JobInteraction{Action: domain.ActionApply}))
	assert.Equal(t, match.SignalPositive, match.ClassifySignal(&domain.JobInteraction{Action: domain.ActionSave, TimeSpent: 1}))
	assert.Equal(t, match.SignalNegative, match.ClassifySignal(&domain.JobInteraction{Action: domain.ActionSkip, TimeSpent: 2}))
	assert.Equal(t, match.SignalNeutral, match.ClassifySignal(&domain.JobInteraction{Action: domain.ActionSkip, TimeSpent: 30}))
	assert.Equal(t, match.SignalNeutral, match.ClassifySignal(&domain.JobInteraction{Action: domain.ActionView}))
}
