package badges

import (
	"log/slog"

	"github.com/pumppro/rankengine/internal/domain/stats"
)

type Evaluator struct {
	logger *slog.Logger
}

func NewEvaluator(logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		logger: logger.With(slog.String("component", "rule_evaluator")),
	}
}

// Evaluate returns the badge IDs newly satisfied by the snapshot, in catalog order and without duplicates.
// Rules for badges in alreadyAwarded are skipped. Malformed rules are logged and skipped.
func (e *Evaluator) Evaluate(snapshot *stats.Snapshot, catalog []Rule, alreadyAwarded map[string]struct{}) []string {
	eligible := make([]string, 0)
	if snapshot == nil {
		return eligible
	}

	picked := make(map[string]struct{})
	for _, rule := range catalog {
		if _, ok := alreadyAwarded[rule.ID]; ok {
			continue
		}
		if _, ok := picked[rule.ID]; ok {
			continue
		}

		ok, err := rule.Satisfied(snapshot)
		if err != nil {
			e.logger.Warn("Skipping malformed badge rule",
				slog.String("type", "sweep"),
				slog.String("user_id", snapshot.UserID),
				slog.String("badge_id", rule.ID),
				slog.String("rule_type", string(rule.RuleType)),
				slog.Any("error", err))
			continue
		}
		if !ok {
			continue
		}

		picked[rule.ID] = struct{}{}
		eligible = append(eligible, rule.ID)
	}

	return eligible
}
