package service

import (
	"context"
	"strings"
	"time"

	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/ce-fello/relief-hub/src/internal/relief"
	"github.com/ce-fello/relief-hub/src/internal/store"

	"go.uber.org/zap"
)

// CurrentUser returns the signed-in user, or nil when nobody is.
func (s *Service) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actor()
}

// actor copies the current user so callers cannot alter the session.
func (s *Service) actor() *model.User {
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Login signs in with a fabricated user; no credentials are checked.
func (s *Service) Login(ctx context.Context, in relief.LoginInput) (model.User, error) {
	if err := relief.Validate(in); err != nil {
		return model.User{}, err
	}
	name, _, _ := strings.Cut(in.Email, "@")
	return s.signIn(ctx, model.User{
		ID:       s.ids(),
		Name:     name,
		Email:    in.Email,
		Role:     in.Role,
		JoinDate: s.now().UTC().Format(time.RFC3339),
	}), nil
}

func (s *Service) Register(ctx context.Context, in relief.RegisterInput) (model.User, error) {
	if err := relief.Validate(in); err != nil {
		return model.User{}, err
	}
	return s.signIn(ctx, model.User{
		ID:       s.ids(),
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Role:     in.Role,
		Phone:    strings.TrimSpace(in.Phone),
		JoinDate: s.now().UTC().Format(time.RFC3339),
	}), nil
}

func (s *Service) signIn(ctx context.Context, u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &u
	s.save(ctx, store.KeyCurrentUser, u)
	s.log.Info("signIn: success", zap.String("user", u.ID), zap.String("role", string(u.Role)))
	return u
}

func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.remove(ctx, store.KeyCurrentUser)
	s.log.Info("Logout: success")
}
