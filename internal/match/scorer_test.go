package match_test

import (
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/match"

	"github.com/stretchr/testify/assert"
)

func newScorer() *match.Scorer {
	return match.NewScorer(newSimilarity(), match.DefaultIndustryTerms(), match.DefaultWeights())
}

func TestExperienceMatch(t *testing.T) {
	sc := newScorer()

	cases := []struct {
		name string
		user domain.ExperienceLevel
		job  domain.ExperienceLevel
		want float64
	}{
		{"same level", domain.LevelMid, domain.LevelMid, 1},
		{"one step apart", domain.LevelMid, domain.LevelSenior, 0.8},
		{"two steps apart", domain.LevelEntry, domain.LevelMid, 0.5},
		{"far apart", domain.LevelEntry, domain.LevelExecutive, 0.2},
		{"unknown user level is neutral", "wizard", domain.LevelMid, 0.5},
		{"unknown job level is neutral", domain.LevelMid, "wizard", 0.5},
		{"missing job level defaults to entry", domain.LevelEntry, "", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sc.ExperienceMatch(tc.user, tc.job))
		})
	}
}

func TestLocationMatch(t *testing.T) {
	sc := newScorer()

	t.Run("No preference is neutral", func(t *testing.T) {
		assert.Equal(t, 0.5, sc.LocationMatch(nil, "Auckland, NZ"))
	})

	t.Run("Substring overlap either direction matches", func(t *testing.T) {
		assert.Equal(t, 1.0, sc.LocationMatch([]string{"auckland"}, "Auckland, NZ"))
		assert.Equal(t, 1.0, sc.LocationMatch([]string{"Greater Auckland, NZ"}, "Auckland, NZ"))
	})

	t.Run("Both mentioning remote matches", func(t *testing.T) {
		assert.Equal(t, 1.0, sc.LocationMatch([]string{"Remote"}, "Remote (US)"))
	})

	t.Run("No overlap scores 0.2", func(t *testing.T) {
		assert.Equal(t, 0.2, sc.LocationMatch([]string{"Wellington"}, "Auckland, NZ"))
	})
}

func TestJobTypeMatch(t *testing.T) {
	sc := newScorer()

	assert.Equal(t, 1.0, sc.JobTypeMatch([]domain.JobType{domain.JobTypeFullTime}, domain.JobTypeFullTime))
	// Outside the preferred set is a soft penalty, not an exclusion
	assert.Equal(t, 0.5, sc.JobTypeMatch([]domain.JobType{domain.JobTypeFullTime}, domain.JobTypeContract))
	assert.Equal(t, 0.5, sc.JobTypeMatch(nil, domain.JobTypeFullTime))
}

func TestSalaryMatch(t *testing.T) {
	sc := newScorer()
	userRange := domain.SalaryRange{Min: 60000, Max: 100000}

	t.Run("Empty or unparsable salary text is neutral", func(t *testing.T) {
		assert.Equal(t, 0.5, sc.SalaryMatch(userRange, ""))
		assert.Equal(t, 0.5, sc.SalaryMatch(userRange, "competitive"))
	})

	t.Run("Full containment scores 1.0", func(t *testing.T) {
		assert.Equal(t, 1.0, sc.SalaryMatch(userRange, "$50,000 - $120,000"))
	})

	t.Run("Partial overlap scores the overlap fraction", func(t *testing.T) {
		// job 80k-120k overlaps user 60k-100k on [80k,100k]: 20k/40k
		assert.InDelta(t, 0.5, sc.SalaryMatch(userRange, "$80,000 - $120,000"), 0.001)
	})

	t.Run("Disjoint ranges score a conservative 0.1", func(t *testing.T) {
		assert.Equal(t, 0.1, sc.SalaryMatch(userRange, "$20,000 - $30,000"))
	})

	t.Run("Tiny overlap is floored at 0.1", func(t *testing.T) {
		assert.Equal(t, 0.1, sc.SalaryMatch(userRange, "$100,000 - $140,000"))
	})

	t.Run("Degenerate user range that overlaps scores 1.0", func(t *testing.T) {
		assert.Equal(t, 1.0, sc.SalaryMatch(domain.SalaryRange{Min: 80000, Max: 80000}, "$70,000 - $90,000"))
	})
}

func TestIndustryMatch(t *testing.T) {
	sc := newScorer()

	t.Run("No listed industries is neutral", func(t *testing.T) {
		assert.Equal(t, 0.5, sc.IndustryMatch(nil, "Backend Engineer", "Build services"))
	})

	t.Run("Verbatim industry term scores 1.0", func(t *testing.T) {
		assert.Equal(t, 1.0, sc.IndustryMatch([]string{"Technology"}, "Technology Lead", ""))
	})

	t.Run("Related term scores 0.7", func(t *testing.T) {
		assert.Equal(t, 0.7, sc.IndustryMatch([]string{"technology"}, "Backend Engineer", "Write software"))
	})

	t.Run("No hit scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, sc.IndustryMatch([]string{"healthcare"}, "Backend Engineer", "Write Go"))
	})
}

func TestCareerProgression(t *testing.T) {
	sc := newScorer()

	user := &domain.UserProfile{ExperienceLevel: domain.LevelJunior}
	assert.Equal(t, 1.0, sc.CareerProgression(user, &domain.Job{ExperienceLevel: domain.LevelMid}))
	assert.Equal(t, 0.3, sc.CareerProgression(user, &domain.Job{ExperienceLevel: domain.LevelExecutive}))

	// "student" is a valid external stage even though it is not on the ladder
	student := &domain.UserProfile{ExperienceLevel: "student"}
	assert.Equal(t, 1.0, sc.CareerProgression(student, &domain.Job{ExperienceLevel: domain.LevelEntry}))

	unknown := &domain.UserProfile{ExperienceLevel: "wizard"}
	assert.Equal(t, 0.3, sc.CareerProgression(unknown, &domain.Job{ExperienceLevel: domain.LevelEntry}))
}

func TestScoreBounds(t *testing.T) {
	sc := newScorer()

	profiles := []*domain.UserProfile{
		{},
		{
			Skills:             []string{"React", "TypeScript", "Go"},
			ExperienceLevel:    domain.LevelMid,
			PreferredLocations: []string{"Auckland"},
			PreferredJobTypes:  []domain.JobType{domain.JobTypeFullTime},
			SalaryRange:        domain.SalaryRange{Min: 60000, Max: 100000},
			Industries:         []string{"technology"},
		},
	}
	jobs := []*domain.Job{
		{},
		{
			Title:           "Frontend React Developer",
			Company:         "Acme",
			Type:            domain.JobTypeFullTime,
			Location:        "Auckland, NZ",
			Salary:          "$70,000 - $90,000",
			Description:     "Build software with React",
			Skills:          []string{"React", "TypeScript"},
			ExperienceLevel: domain.LevelMid,
		},
	}

	for _, user := range profiles {
		for _, job := range jobs {
			score := sc.Score(user, job)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)

			factors := sc.Factors(user, job)
			for _, f := range []float64{
				factors.SkillsAlignment, factors.ExperienceFit, factors.LocationPreference,
				factors.SalaryMatch, factors.IndustryInterest, factors.CareerProgression,
			} {
				assert.GreaterOrEqual(t, f, 0.0)
				assert.LessOrEqual(t, f, 1.0)
			}
		}
	}
}

func TestScoreMonotonicInSkillOverlap(t *testing.T) {
	sc := newScorer()

	job := &domain.Job{
		Title:  "Platform Engineer",
		Skills: []string{"go", "kubernetes", "terraform"},
	}
	base := domain.UserProfile{
		ExperienceLevel: domain.LevelMid,
		SalaryRange:     domain.SalaryRange{Min: 60000, Max: 100000},
	}

	prev := -1.0
	for _, skills := range [][]string{nil, {"go"}, {"go", "kubernetes"}, {"go", "kubernetes", "terraform"}} {
		user := base
		user.Skills = skills
		score := sc.Score(&user, job)
		assert.Greater(t, score, prev, "adding overlap must strictly increase the score")
		prev = score
	}
}
