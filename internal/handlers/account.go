package handlers

import (
	"context"
	"errors"

	"github.com/localnerve/marketdb/internal/middleware"
	"github.com/localnerve/marketdb/internal/session"
	"go.uber.org/zap"
)

func (sh *Shell) createUser(ctx context.Context, _ *session.Session) error {
	var in session.NewUser
	var err error
	if in.Name, err = sh.in.Line("\tEnter name: "); err != nil {
		return err
	}
	if in.Password, err = sh.in.Line("\tEnter password: "); err != nil {
		return err
	}
	if in.Latitude, err = sh.in.Float("\tEnter latitude: "); err != nil {
		return err
	}
	if in.Longitude, err = sh.in.Float("\tEnter longitude: "); err != nil {
		return err
	}

	user, err := session.CreateUser(ctx, sh.db, in)
	if err != nil {
		if errors.Is(err, session.ErrNameTaken) {
			sh.out.Warning("That name is already taken.")
			return nil
		}
		return err
	}
	middleware.Logger(ctx).Info("user created", zap.Int64("user_id", user.ID))
	sh.out.Success("User successfully created!")
	return nil
}

// login replaces the session only when the credentials match
func (sh *Shell) login(ctx context.Context, _ *session.Session) error {
	name, err := sh.in.Line("\tEnter name: ")
	if err != nil {
		return err
	}
	password, err := sh.in.Line("\tEnter password: ")
	if err != nil {
		return err
	}

	s, err := session.Login(ctx, sh.db, name, password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			middleware.Logger(ctx).Info("login failed", zap.String("user", name))
			sh.out.Warning("Invalid name or password.")
			return nil
		}
		return err
	}
	sh.session = s
	middleware.Logger(ctx).Info("logged in", zap.String("user", name))
	return nil
}
