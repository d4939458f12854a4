// Package middleware wraps menu commands with gates and per-command logging.
package middleware

import (
	"context"

	"github.com/localnerve/marketdb/internal/authz"
	"github.com/localnerve/marketdb/internal/session"
	"github.com/localnerve/marketdb/internal/types"
	"go.uber.org/zap"
)

// Command is one menu action run for a logged-in session
type Command func(ctx context.Context, s *session.Session) error

// RequireElevated runs next only for managers and admins. A denial becomes an
// access_denied rejection carrying the given message; a failed check is
// returned as the underlying error.
func RequireElevated(engine *authz.Engine, denied string, next Command) Command {
	return func(ctx context.Context, s *session.Session) error {
		decision := engine.HasElevatedAccess(ctx, s)
		switch decision.Outcome {
		case authz.Allowed:
			return next(ctx, s)
		case authz.Failed:
			return decision.Err
		}
		Logger(ctx).Debug("entry gate denied", zap.String("reason", decision.Reason))
		return types.Reject(types.KindAccessDenied, denied)
	}
}

// RequireStore checks the per-store policy (admin, or manager of the store)
// for commands that already passed the entry gate.
func RequireStore(ctx context.Context, engine *authz.Engine, s *session.Session, storeID int64) error {
	decision := engine.CanManageStore(ctx, s, storeID)
	switch decision.Outcome {
	case authz.Allowed:
		return nil
	case authz.Failed:
		return decision.Err
	}
	Logger(ctx).Debug("store gate denied", zap.Int64("store_id", storeID), zap.String("reason", decision.Reason))
	return types.Reject(types.KindAccessDenied, "You are not a verified manager for this store.")
}
