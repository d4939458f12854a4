// session.go
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

// Package session holds the credentials of the logged-in principal.
//
// No token is minted. The name and password are the re-authentication key:
// every principal lookup queries the users table again, so a deleted user or
// a changed password invalidates the session on its next use.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/localnerve/marketdb/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned by Login when no user matches
	ErrInvalidCredentials = errors.New("invalid name or password")
	// ErrNoPrincipal is returned when a session's credentials no longer match a user
	ErrNoPrincipal = errors.New("logged in user no longer exists")
	// ErrNameTaken is returned by CreateUser for a name already registered
	ErrNameTaken = errors.New("user name is already taken")
)

// Session is the credential pair of one authenticated principal
type Session struct {
	Name     string
	Password string
}

// NewUser is the registration input
type NewUser struct {
	Name      string
	Password  string
	Latitude  float64
	Longitude float64
}

// Login checks the credentials and returns a session for the matching user.
// A failed login returns no session. The name is trimmed the same way
// CreateUser trims it.
func Login(ctx context.Context, db *gorm.DB, name, password string) (*Session, error) {
	s := &Session{Name: strings.TrimSpace(name), Password: password}
	if _, err := s.Principal(ctx, db); err != nil {
		if errors.Is(err, ErrNoPrincipal) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s, nil
}

// Principal re-reads the user row matching the session credentials.
// Names are unique, the ordering only pins behavior for databases created
// before the unique index existed.
func (s *Session) Principal(ctx context.Context, db *gorm.DB) (*models.User, error) {
	var users []models.User
	err := db.WithContext(ctx).
		Where("name = ? AND password = ?", s.Name, s.Password).
		Order("userid").
		Limit(1).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("lookup user %s: %w", s.Name, err)
	}
	if len(users) == 0 {
		return nil, ErrNoPrincipal
	}
	return &users[0], nil
}

// CurrentUserID returns the id of the session's user
func (s *Session) CurrentUserID(ctx context.Context, db *gorm.DB) (int64, error) {
	u, err := s.Principal(ctx, db)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// CurrentUserRole returns the role of the session's user
func (s *Session) CurrentUserRole(ctx context.Context, db *gorm.DB) (models.Role, error) {
	u, err := s.Principal(ctx, db)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// CurrentUserType returns the role as its stored text
func (s *Session) CurrentUserType(ctx context.Context, db *gorm.DB) (string, error) {
	r, err := s.CurrentUserRole(ctx, db)
	return r.String(), err
}

// CreateUser registers a customer. Names must be unique because they are the login key.
func CreateUser(ctx context.Context, db *gorm.DB, in NewUser) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if in.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	for _, c := range []float64{in.Latitude, in.Longitude} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("location must be finite")
		}
	}

	user := &models.User{
		Name:      name,
		Password:  in.Password,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Role:      models.RoleCustomer,
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrNameTaken
		}
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create user %s: %w", name, err)
	}
	return user, nil
}
