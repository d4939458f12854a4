// authz.go
//
// An interactive client for the marketplace relational database
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of marketdb.
// marketdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// marketdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with marketdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package authz decides whether the session's principal may run an operation.
//
// Every check is a fresh query against users (and store for ownership); no
// capability is cached between commands. Decisions keep a denial apart from a
// failed query so callers can report them differently.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/marketdb/internal/models"
	"github.com/localnerve/marketdb/internal/session"
	"gorm.io/gorm"
)

// Outcome is the kind of a Decision
type Outcome int

const (
	Allowed Outcome = iota
	Denied
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Decision is the result of one authorization check
type Decision struct {
	Outcome Outcome
	Reason  string
	Err     error
}

func allow() Decision {
	return Decision{Outcome: Allowed}
}

func deny(reason string) Decision {
	return Decision{Outcome: Denied, Reason: reason}
}

func fail(err error) Decision {
	return Decision{Outcome: Failed, Reason: err.Error(), Err: err}
}

// Allowed is false for both denials and failures
func (d Decision) Allowed() bool {
	return d.Outcome == Allowed
}

// Engine runs authorization checks against the database
type Engine struct {
	db *gorm.DB
}

// New creates an Engine
func New(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// roleMatches is true when a user row exists for the session with one of the roles.
// The stored type is compared the way models.Role scans it, ignoring case and padding.
func (e *Engine) roleMatches(ctx context.Context, s *session.Session, roles []models.Role, reason string) Decision {
	if s == nil {
		return deny("not logged in")
	}
	var count int64
	err := e.db.WithContext(ctx).
		Model(&models.User{}).
		Where("name = ? AND password = ? AND LOWER(TRIM(type)) IN ?", s.Name, s.Password, roles).
		Count(&count).Error
	if err != nil {
		return fail(fmt.Errorf("role check: %w", err))
	}
	if count == 0 {
		return deny(reason)
	}
	return allow()
}

// HasElevatedAccess allows managers and admins
func (e *Engine) HasElevatedAccess(ctx context.Context, s *session.Session) Decision {
	return e.roleMatches(ctx, s, models.ElevatedRoles(), "manager or admin role required")
}

// IsAdmin allows admins only
func (e *Engine) IsAdmin(ctx context.Context, s *session.Session) Decision {
	return e.roleMatches(ctx, s, []models.Role{models.RoleAdmin}, "admin role required")
}

// IsManager allows managers only; admins are not managers here
func (e *Engine) IsManager(ctx context.Context, s *session.Session) Decision {
	return e.roleMatches(ctx, s, []models.Role{models.RoleManager}, "manager role required")
}

// OwnsStore allows the principal whose id is the store's managerid.
// The role is not consulted and admins get no exemption here.
func (e *Engine) OwnsStore(ctx context.Context, s *session.Session, storeID int64) Decision {
	if s == nil {
		return deny("not logged in")
	}
	userID, err := s.CurrentUserID(ctx, e.db)
	if err != nil {
		if errors.Is(err, session.ErrNoPrincipal) {
			return deny("not a verified manager for this store")
		}
		return fail(err)
	}

	var count int64
	err = e.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("storeid = ? AND managerid = ?", storeID, userID).
		Count(&count).Error
	if err != nil {
		return fail(fmt.Errorf("ownership check: %w", err))
	}
	if count == 0 {
		return deny("not a verified manager for this store")
	}
	return allow()
}

// CanManageStore is the policy for manager-scoped writes and reports on one
// store: IsAdmin or OwnsStore. A failed admin check is reported as a failure
// rather than falling through to ownership.
func (e *Engine) CanManageStore(ctx context.Context, s *session.Session, storeID int64) Decision {
	admin := e.IsAdmin(ctx, s)
	switch admin.Outcome {
	case Allowed, Failed:
		return admin
	}
	return e.OwnsStore(ctx, s, storeID)
}
