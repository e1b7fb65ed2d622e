package match

import (
	"regexp"
	"strconv"
	"strings"

	"go-jobmatch-backend/internal/domain"
)

// Weights combines the six sub-scores into the overall match score.
// They must sum to 1.0 — changing them changes ranking order, so they
// are a documented tunable rather than inline constants.
type Weights struct {
	Skills     float64
	Experience float64
	Location   float64
	JobType    float64
	Salary     float64
	Industry   float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:     0.30,
		Experience: 0.25,
		Location:   0.15,
		JobType:    0.10,
		Salary:     0.10,
		Industry:   0.10,
	}
}

var salaryNumbers = regexp.MustCompile(`[0-9]+,?[0-9]*`)

// Scorer computes per-factor sub-scores for a (profile, job) pair.
// Every method is pure and total: missing or malformed input degrades to
// a neutral or conservative default, never an error, so the ranking over
// a job pool is always defined.
type Scorer struct {
	sim           *Similarity
	industryTerms map[string][]string
	weights       Weights
}

func NewScorer(sim *Similarity, industryTerms map[string][]string, weights Weights) *Scorer {
	return &Scorer{sim: sim, industryTerms: industryTerms, weights: weights}
}

// Score returns the weighted overall match in [0,1].
func (sc *Scorer) Score(user *domain.UserProfile, job *domain.Job) float64 {
	return sc.SkillsMatch(user, job)*sc.weights.Skills +
		sc.ExperienceMatch(user.ExperienceLevel, job.ExperienceLevel)*sc.weights.Experience +
		sc.LocationMatch(user.PreferredLocations, job.Location)*sc.weights.Location +
		sc.JobTypeMatch(user.PreferredJobTypes, job.Type)*sc.weights.JobType +
		sc.SalaryMatch(user.SalaryRange, job.Salary)*sc.weights.Salary +
		sc.IndustryMatch(user.Industries, job.Title, job.Description)*sc.weights.Industry
}

func (sc *Scorer) SkillsMatch(user *domain.UserProfile, job *domain.Job) float64 {
	return sc.sim.SkillSetMatch(user.Skills, job.Skills)
}

// ExperienceMatch scores ordinal distance on the seniority ladder:
// 1.0 at distance 0, 0.8 at 1, 0.5 at 2, 0.2 beyond. Unknown levels on
// either side score a neutral 0.5. A posting without a level is treated
// as entry.
func (sc *Scorer) ExperienceMatch(userLevel, jobLevel domain.ExperienceLevel) float64 {
	if jobLevel == "" {
		jobLevel = domain.LevelEntry
	}
	userRank, ok := experienceRank[userLevel]
	if !ok {
		return 0.5
	}
	jobRank, ok := experienceRank[jobLevel]
	if !ok {
		return 0.5
	}

	diff := userRank - jobRank
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1
	case 1:
		return 0.8
	case 2:
		return 0.5
	}
	return 0.2
}

func (sc *Scorer) LocationMatch(preferred []string, jobLocation string) float64 {
	if len(preferred) == 0 {
		return 0.5
	}

	jobLoc := strings.ToLower(jobLocation)
	for _, loc := range preferred {
		l := strings.ToLower(loc)
		if strings.Contains(jobLoc, l) || strings.Contains(l, jobLoc) {
			return 1
		}
	}

	if strings.Contains(jobLoc, "remote") {
		for _, loc := range preferred {
			if strings.Contains(strings.ToLower(loc), "remote") {
				return 1
			}
		}
	}
	return 0.2
}

// JobTypeMatch soft-penalizes rather than excludes postings outside the
// preferred set.
func (sc *Scorer) JobTypeMatch(preferred []domain.JobType, jobType domain.JobType) float64 {
	for _, t := range preferred {
		if t == jobType {
			return 1
		}
	}
	return 0.5
}

// SalaryMatch extracts numeric tokens from the posting's free-text salary
// and scores interval overlap with the user's range, relative to the
// user's range width. Text parsing is unreliable, so a non-overlapping
// range scores a conservative 0.1 rather than 0, and unparsable text a
// neutral 0.5.
func (sc *Scorer) SalaryMatch(userRange domain.SalaryRange, jobSalary string) float64 {
	if jobSalary == "" {
		return 0.5
	}
	tokens := salaryNumbers.FindAllString(jobSalary, -1)
	if len(tokens) == 0 {
		return 0.5
	}

	jobMin, jobMax := 0.0, 0.0
	parsed := false
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
		if err != nil {
			continue
		}
		if !parsed || v < jobMin {
			jobMin = v
		}
		if !parsed || v > jobMax {
			jobMax = v
		}
		parsed = true
	}
	if !parsed {
		return 0.5
	}

	if jobMax < userRange.Min || jobMin > userRange.Max {
		return 0.1
	}

	width := userRange.Max - userRange.Min
	if width <= 0 {
		// Degenerate user range that still overlaps the posting.
		return 1
	}

	overlapStart := jobMin
	if userRange.Min > overlapStart {
		overlapStart = userRange.Min
	}
	overlapEnd := jobMax
	if userRange.Max < overlapEnd {
		overlapEnd = userRange.Max
	}

	score := (overlapEnd - overlapStart) / width
	if score > 1 {
		return 1
	}
	if score < 0.1 {
		return 0.1
	}
	return score
}

// IndustryMatch looks for the user's industries verbatim in the posting
// text (1.0), then for curated related terms (0.7). No listed industries
// scores a neutral 0.5; no hit at all scores 0.
func (sc *Scorer) IndustryMatch(industries []string, jobTitle, jobDescription string) float64 {
	if len(industries) == 0 {
		return 0.5
	}

	text := strings.ToLower(jobTitle + " " + jobDescription)
	best := 0.0
	for _, industry := range industries {
		ind := strings.ToLower(industry)
		if strings.Contains(text, ind) {
			return 1
		}
		for _, term := range sc.industryTerms[ind] {
			if strings.Contains(text, term) {
				best = 0.7
			}
		}
	}
	return best
}

// CareerProgression scores whether the posting is a natural next step
// from the user's current level per the fixed progression table.
func (sc *Scorer) CareerProgression(user *domain.UserProfile, job *domain.Job) float64 {
	jobLevel := job.ExperienceLevel
	if jobLevel == "" {
		jobLevel = domain.LevelEntry
	}
	for _, next := range careerProgressions[string(user.ExperienceLevel)] {
		if next == jobLevel {
			return 1
		}
	}
	return 0.3
}

// Factors bundles the per-factor breakdown returned with each
// recommendation.
func (sc *Scorer) Factors(user *domain.UserProfile, job *domain.Job) domain.PersonalizationFactors {
	return domain.PersonalizationFactors{
		SkillsAlignment:    sc.SkillsMatch(user, job),
		ExperienceFit:      sc.ExperienceMatch(user.ExperienceLevel, job.ExperienceLevel),
		LocationPreference: sc.LocationMatch(user.PreferredLocations, job.Location),
		SalaryMatch:        sc.SalaryMatch(user.SalaryRange, job.Salary),
		IndustryInterest:   sc.IndustryMatch(user.Industries, job.Title, job.Description),
		CareerProgression:  sc.CareerProgression(user, job),
	}
}
