package badges

import (
	"fmt"

	"github.com/pumppro/rankengine/internal/domain/errs"
	"github.com/pumppro/rankengine/internal/domain/stats"
)

type RuleType string

const (
	RuleTotalSessions       RuleType = "TOTAL_SESSIONS"
	RuleTotalDuration       RuleType = "TOTAL_DURATION"
	RuleTotalCalories       RuleType = "TOTAL_CALORIES"
	RuleTotalRepetitions    RuleType = "TOTAL_REPETITIONS"
	RuleChallengesCompleted RuleType = "CHALLENGES_COMPLETED"
	RuleChallengesCreated   RuleType = "CHALLENGES_CREATED"
	RuleChallengesWon       RuleType = "CHALLENGES_WON"
	RuleTrainingStreak      RuleType = "TRAINING_STREAK"
)

// Rule is a badge and the condition that earns it.
type Rule struct {
	ID         string
	Name       string
	RuleType   RuleType
	Threshold  int64
	PointValue int64
}

// Value returns the snapshot field the rule type reads.
// ok is false for a rule type outside the closed set.
func (t RuleType) Value(s *stats.Snapshot) (value int64, ok bool) {
	switch t {
	case RuleTotalSessions:
		return s.TotalSessions, true
	case RuleTotalDuration:
		return s.TotalDurationMinutes, true
	case RuleTotalCalories:
		return s.TotalCalories, true
	case RuleTotalRepetitions:
		return s.TotalRepetitions, true
	case RuleChallengesCompleted:
		return s.ChallengesCompleted, true
	case RuleChallengesCreated:
		return s.ChallengesCreated, true
	case RuleChallengesWon:
		return s.ChallengesWon, true
	case RuleTrainingStreak:
		return s.TrainingStreakDays, true
	default:
		return 0, false
	}
}

func (t RuleType) Valid() bool {
	_, ok := t.Value(&stats.Snapshot{})
	return ok
}

// Satisfied reports whether the snapshot meets the rule's threshold.
// A malformed rule is never satisfied and reports errs.ErrMalformedRule.
func (r Rule) Satisfied(s *stats.Snapshot) (bool, error) {
	if r.Threshold < 0 {
		return false, fmt.Errorf("rule %s has negative threshold %d: %w", r.ID, r.Threshold, errs.ErrMalformedRule)
	}

	value, ok := r.RuleType.Value(s)
	if !ok {
		return false, fmt.Errorf("rule %s has unknown type %q: %w", r.ID, r.RuleType, errs.ErrMalformedRule)
	}

	return value >= r.Threshold, nil
}
