package ports

import (
	"context"

	"github.com/learnhub/learnhub-cli/internal/domain"
)

// SessionRepository persists the principal half of the session. Load
// reports domain.ErrNoPrincipal when nothing is stored; a decode failure
// is returned as-is so callers can fail closed.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Principal, error)
	Save(ctx context.Context, principal domain.Principal) error
	Clear(ctx context.Context) error
}
