package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/ce-fello/relief-hub/src/internal/relief"
	"github.com/ce-fello/relief-hub/src/internal/store"

	"go.uber.org/zap"
)

// Service is the application state: the request and volunteer collections,
// the signed-in user, and the store they are mirrored to. Every exported
// method runs under one lock, so actions are applied one at a time.
type Service struct {
	repo store.KV
	log  *zap.Logger
	ids  relief.IDGen
	now  func() time.Time

	mu         sync.Mutex
	requests   []model.HelpRequest
	volunteers []model.Volunteer
	current    *model.User
}

func NewService(kv store.KV, logger *zap.Logger) *Service {
	return &Service{
		repo: kv,
		log:  logger,
		ids:  relief.UUIDGen(),
		now:  time.Now,
	}
}

// Load restores state from the store. Each collection that is absent or
// does not parse falls back to its seed independently; the result is written
// back so the store always mirrors what is in memory.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
}

// Reset drops both persisted collections and reloads the seed data.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(ctx, store.KeyRequests)
	s.remove(ctx, store.KeyVolunteers)
	s.loadLocked(ctx)
}

func (s *Service) loadLocked(ctx context.Context) {
	s.requests = s.loadRequests(ctx)
	s.volunteers = s.loadVolunteers(ctx)
	s.current = s.loadUser(ctx)

	s.saveRequests(ctx)
	s.saveVolunteers(ctx)
	s.log.Info("Load: state restored",
		zap.Int("requests", len(s.requests)),
		zap.Int("volunteers", len(s.volunteers)),
		zap.Bool("signed_in", s.current != nil))
}

func (s *Service) loadRequests(ctx context.Context) []model.HelpRequest {
	raw, ok := s.load(ctx, store.KeyRequests)
	if !ok {
		return relief.SeedRequests()
	}
	reqs, err := decodeRequests(raw)
	if err != nil {
		s.log.Error("loadRequests: malformed blob, using seed data", zap.Error(err))
		return relief.SeedRequests()
	}
	return reqs
}

func (s *Service) loadVolunteers(ctx context.Context) []model.Volunteer {
	raw, ok := s.load(ctx, store.KeyVolunteers)
	if !ok {
		return relief.SeedVolunteers()
	}
	vols, err := decodeVolunteers(raw)
	if err != nil {
		s.log.Error("loadVolunteers: malformed blob, using seed data", zap.Error(err))
		return relief.SeedVolunteers()
	}
	return vols
}

func (s *Service) loadUser(ctx context.Context) *model.User {
	raw, ok := s.load(ctx, store.KeyCurrentUser)
	if !ok {
		return nil
	}
	u, err := decodeUser(raw)
	if err != nil {
		s.log.Error("loadUser: malformed blob, signed out", zap.Error(err))
		return nil
	}
	return u
}

// load treats store failures as an absent key.
func (s *Service) load(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.repo.Load(ctx, key)
	if err != nil {
		s.log.Warn("load: store error, treating as absent", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, ok
}

func (s *Service) save(ctx context.Context, key string, v any) {
	raw, err := encode(v)
	if err != nil {
		s.log.Error("save: encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.repo.Save(ctx, key, raw); err != nil {
		s.log.Warn("save: store error ignored", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) remove(ctx context.Context, key string) {
	if err := s.repo.Remove(ctx, key); err != nil {
		s.log.Warn("remove: store error ignored", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) saveRequests(ctx context.Context)   { s.save(ctx, store.KeyRequests, s.requests) }
func (s *Service) saveVolunteers(ctx context.Context) { s.save(ctx, store.KeyVolunteers, s.volunteers) }

// Requests returns every request regardless of visibility.
func (s *Service) Requests() []model.HelpRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// AllVolunteers returns the whole roster regardless of the signed-in user.
func (s *Service) AllVolunteers() []model.Volunteer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.volunteers)
}
