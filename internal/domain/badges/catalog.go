package badges

import "context"

// Catalog is the administrator-owned badge catalog. It is read on every
// evaluation and never cached by the engine.
type Catalog interface {
	GetAllRules(ctx context.Context) ([]Rule, error)
	GetRule(ctx context.Context, badgeID string) (*Rule, error)
}
