package service

import (
	"context"

	"github.com/ce-fello/relief-hub/src/internal/api/apiErrors"
	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/ce-fello/relief-hub/src/internal/relief"

	"go.uber.org/zap"
)

// Volunteers searches the directory. Only admins and volunteers may list it.
func (s *Service) Volunteers(q relief.VolunteerQuery) ([]model.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := relief.Authorize(s.actor(), relief.ActionListVolunteers, nil, ""); err != nil {
		return nil, apiErrors.From(err)
	}
	return relief.FilterVolunteers(s.volunteers, q), nil
}

func (s *Service) RegisterVolunteer(ctx context.Context, d relief.VolunteerDraft) (model.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := relief.Authorize(s.actor(), relief.ActionRegisterVolunteer, nil, ""); err != nil {
		return model.Volunteer{}, apiErrors.From(err)
	}
	next, created, err := relief.RegisterVolunteer(s.volunteers, d, s.ids)
	if err != nil {
		return model.Volunteer{}, apiErrors.From(err)
	}
	s.volunteers = next
	s.saveVolunteers(ctx)
	s.log.Info("RegisterVolunteer: success", zap.String("volunteer", created.ID))
	return created, nil
}
