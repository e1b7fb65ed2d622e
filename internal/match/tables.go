package match

import "go-jobmatch-backend/internal/domain"

// Static knowledge tables seeded at construction time. They are passed
// into NewSimilarity / NewScorer / NewEngine rather than read from
// package-level state so tests can substitute fixtures.

// DefaultSynonyms groups skill names treated as equivalent or closely
// related. A hit on the same group scores 0.9 even when the strings
// share no characters.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"javascript":         {"js", "ecmascript", "node.js", "nodejs"},
		"python":             {"py", "django", "flask", "pandas"},
		"react":              {"reactjs", "react.js", "jsx"},
		"typescript":         {"ts"},
		"machine learning":   {"ml", "artificial intelligence", "ai", "deep learning"},
		"data science":       {"data analysis", "analytics", "statistics"},
		"ui/ux":              {"user experience", "user interface", "design", "figma"},
		"project management": {"pm", "scrum", "agile", "kanban"},
	}
}

// DefaultIndustryTerms maps an industry name to related terms that count
// as a weaker (0.7) hit when the industry itself does not appear in a
// posting's text.
func DefaultIndustryTerms() map[string][]string {
	return map[string][]string{
		"technology": {"tech", "software", "developer", "engineer", "programming"},
		"healthcare": {"medical", "health", "clinical", "patient", "hospital"},
		"finance":    {"financial", "banking", "investment", "trading", "fintech"},
		"marketing":  {"advertising", "brand", "campaign", "digital marketing", "social media"},
		"education":  {"teaching", "academic", "learning", "training", "curriculum"},
	}
}

// DefaultTrendingKeywords flags a posting as a trending opportunity when
// any of them appears in its title or description.
func DefaultTrendingKeywords() []string {
	return []string{"ai", "machine learning", "react", "python", "data science", "cybersecurity"}
}

// DefaultTrends is the seeded market-trend table. A production deployment
// would reseed this periodically out of band.
func DefaultTrends() []domain.TrendingJobInsight {
	return []domain.TrendingJobInsight{
		{
			Skill:             "AI/Machine Learning",
			DemandGrowth:      45,
			AverageSalary:     120000,
			JobCount:          1250,
			TrendingCompanies: []string{"Google", "Microsoft", "OpenAI", "Anthropic"},
		},
		{
			Skill:             "React Development",
			DemandGrowth:      32,
			AverageSalary:     95000,
			JobCount:          2100,
			TrendingCompanies: []string{"Meta", "Netflix", "Airbnb", "Uber"},
		},
		{
			Skill:             "Data Science",
			DemandGrowth:      28,
			AverageSalary:     110000,
			JobCount:          1800,
			TrendingCompanies: []string{"Amazon", "Tesla", "Spotify", "LinkedIn"},
		},
		{
			Skill:             "Cybersecurity",
			DemandGrowth:      38,
			AverageSalary:     105000,
			JobCount:          950,
			TrendingCompanies: []string{"CrowdStrike", "Palo Alto Networks", "Okta"},
		},
	}
}

// careerProgressions fixes which posting levels count as a natural next
// step from a user's current level. "student" appears because external
// profiles may carry it as a pre-entry stage.
var careerProgressions = map[string][]domain.ExperienceLevel{
	"student": {domain.LevelEntry, domain.LevelJunior},
	"entry":   {domain.LevelEntry, domain.LevelJunior, domain.LevelMid},
	"junior":  {domain.LevelJunior, domain.LevelMid, domain.LevelSenior},
	"mid":     {domain.LevelMid, domain.LevelSenior},
	"senior":  {domain.LevelSenior, domain.LevelExecutive},
}

// experienceRank orders the seniority ladder for ordinal-distance scoring.
var experienceRank = map[domain.ExperienceLevel]int{
	domain.LevelEntry:     0,
	domain.LevelJunior:    1,
	domain.LevelMid:       2,
	domain.LevelSenior:    3,
	domain.LevelExecutive: 4,
}
