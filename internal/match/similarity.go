package match

import "strings"

// Similarity computes skill-to-skill and string-to-string similarity.
// All inputs are normalized (lowercased, trimmed) at the boundary so the
// methods are total and side-effect-free.
type Similarity struct {
	synonyms map[string][]string
}

func NewSimilarity(synonyms map[string][]string) *Similarity {
	return &Similarity{synonyms: synonyms}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SkillSimilarity scores two skill names in [0,1]:
// exact match 1.0, synonym-group hit 0.9, substring containment 0.8,
// otherwise a scaled edit-distance fallback. The non-exact rules do not
// short-circuit each other; the best applicable score wins.
func (s *Similarity) SkillSimilarity(a, b string) float64 {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	best := 0.0
	if strings.Contains(a, b) || strings.Contains(b, a) {
		best = 0.8
	}
	if sem := s.semantic(a, b); sem > best {
		best = sem
	}
	return best
}

// semantic checks the synonym table, then falls back to edit distance.
// The edit-distance ratio only counts when it clears 0.7, and is scaled
// by 0.6 so a near-typo never outranks a table hit.
func (s *Similarity) semantic(a, b string) float64 {
	for key, group := range s.synonyms {
		aIn := a == key || contains(group, a)
		bIn := b == key || contains(group, b)
		if aIn && bIn {
			return 0.9
		}
	}

	ratio := s.StringSimilarity(a, b)
	if ratio > 0.7 {
		return ratio * 0.6
	}
	return 0
}

// StringSimilarity is the normalized Levenshtein ratio
// 1 - distance/max(len(a), len(b)), in [0,1].
func (s *Similarity) StringSimilarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return float64(longer-levenshtein(a, b)) / float64(longer)
}

// SkillSetMatch scores a posting's required skills against a user's
// skills: each job skill takes its best match across all user skills,
// and the per-skill bests are averaged. A posting listing no skills
// scores a neutral 0.5 — absence of a signal is not a mismatch.
func (s *Similarity) SkillSetMatch(userSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0.5
	}

	total := 0.0
	for _, jobSkill := range jobSkills {
		best := 0.0
		for _, userSkill := range userSkills {
			sim := s.SkillSimilarity(jobSkill, userSkill)
			if sim > best {
				best = sim
			}
			if best == 1 {
				break
			}
		}
		total += best
	}
	return total / float64(len(jobSkills))
}

// levenshtein is the standard dynamic-programming edit distance,
// rolling a single row to keep it O(min(m,n)) space.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func contains(group []string, term string) bool {
	for _, g := range group {
		if g == term {
			return true
		}
	}
	return false
}
