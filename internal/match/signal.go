package match

import "go-jobmatch-backend/internal/domain"

// Signal classifies a behavioral event for downstream learning systems.
type Signal string

const (
	SignalPositive Signal = "positive"
	SignalNegative Signal = "negative"
	SignalNeutral  Signal = "neutral"
)

// quickSkipSeconds is the dwell time under which a skip counts as
// active disinterest rather than noise.
const quickSkipSeconds = 5

// ClassifySignal maps an interaction to the signal the feedback sink
// records: applies and saves show interest, a quick skip shows
// disinterest, everything else is neutral.
func ClassifySignal(interaction *domain.JobInteraction) Signal {
	switch interaction.Action {
	case domain.ActionApply, domain.ActionSave:
		return SignalPositive
	case domain.ActionSkip:
		if interaction.TimeSpent < quickSkipSeconds {
			return SignalNegative
		}
	}
	return SignalNeutral
}
