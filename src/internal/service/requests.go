package service

import (
	"context"

	"github.com/ce-fello/relief-hub/src/internal/api/apiErrors"
	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/ce-fello/relief-hub/src/internal/relief"

	"go.uber.org/zap"
)

// VisibleRequests lists the requests the signed-in user (or an anonymous
// visitor) may see, filtered by q.
func (s *Service) VisibleRequests(q relief.Query) []model.HelpRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return relief.FilterRequests(s.current, s.requests, q)
}

// GetRequest returns a request only if it is visible to the signed-in user.
func (s *Service) GetRequest(id string) (model.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := relief.FindRequest(s.requests, id)
	if !ok || !relief.CanView(s.current, r) {
		return model.HelpRequest{}, apiErrors.APIError{Code: apiErrors.NotFound, Message: "request not found"}
	}
	return r, nil
}

func (s *Service) SubmitRequest(ctx context.Context, d relief.RequestDraft) (model.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor := s.actor()
	if err := relief.Authorize(actor, relief.ActionSubmitRequest, nil, ""); err != nil {
		return model.HelpRequest{}, apiErrors.From(err)
	}
	next, created, err := relief.SubmitRequest(s.requests, actor, d, s.ids)
	if err != nil {
		return model.HelpRequest{}, apiErrors.From(err)
	}
	s.requests = next
	s.saveRequests(ctx)
	s.log.Info("SubmitRequest: success", zap.String("request", created.ID), zap.String("author", actor.ID))
	return created, nil
}

func (s *Service) ApproveRequest(ctx context.Context, id string) (model.HelpRequest, bool, error) {
	return s.decide(ctx, id, relief.ActionApproveRequest, relief.ApproveRequest)
}

func (s *Service) RejectRequest(ctx context.Context, id string) (model.HelpRequest, bool, error) {
	return s.decide(ctx, id, relief.ActionRejectRequest, relief.RejectRequest)
}

func (s *Service) decide(ctx context.Context, id string, action relief.Action,
	apply func([]model.HelpRequest, string) ([]model.HelpRequest, bool)) (model.HelpRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := relief.Authorize(s.actor(), action, nil, ""); err != nil {
		return model.HelpRequest{}, false, apiErrors.From(err)
	}
	next, applied := apply(s.requests, id)
	return s.commitRequest(ctx, next, applied, id, string(action))
}

// AddOffer records an offer of help signed with the current user's name.
func (s *Service) AddOffer(ctx context.Context, id, message, contact string) (model.HelpRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, r, found, err := s.interaction(id, relief.ActionAddOffer)
	if err != nil || !found {
		return r, false, err
	}
	next, applied, err := relief.AddOffer(s.requests, id, relief.OfferDraft{
		Author:  actor.Name,
		Message: message,
		Contact: contact,
	}, s.ids)
	if err != nil {
		return model.HelpRequest{}, false, apiErrors.From(err)
	}
	return s.commitRequest(ctx, next, applied, id, "AddOffer")
}

func (s *Service) AddComment(ctx context.Context, id, message string) (model.HelpRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, r, found, err := s.interaction(id, relief.ActionAddComment)
	if err != nil || !found {
		return r, false, err
	}
	next, applied, err := relief.AddComment(s.requests, id, relief.CommentDraft{
		Author:  actor.Name,
		Message: message,
	}, s.ids)
	if err != nil {
		return model.HelpRequest{}, false, apiErrors.From(err)
	}
	return s.commitRequest(ctx, next, applied, id, "AddComment")
}

// interaction resolves the actor and target request for an offer or comment.
// An unknown request is reported with found=false and no error.
func (s *Service) interaction(id string, action relief.Action) (*model.User, model.HelpRequest, bool, error) {
	actor := s.actor()
	if actor == nil {
		return nil, model.HelpRequest{}, false, apiErrors.From(relief.Authorize(nil, action, nil, ""))
	}
	r, ok := relief.FindRequest(s.requests, id)
	if !ok {
		return actor, model.HelpRequest{}, false, nil
	}
	if err := relief.Authorize(actor, action, &r, ""); err != nil {
		return actor, model.HelpRequest{}, false, apiErrors.From(err)
	}
	return actor, r, true, nil
}

// AssignVolunteer is the only way to create an assignment; the request and
// the volunteer are updated and persisted together. Only an available
// volunteer can be picked, so with nobody available it fails with NoCandidate.
func (s *Service) AssignVolunteer(ctx context.Context, id string, d relief.AssignmentDraft) (model.HelpRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor := s.actor()
	if err := relief.Authorize(actor, relief.ActionAssignVolunteer, nil, ""); err != nil {
		return model.HelpRequest{}, false, apiErrors.From(err)
	}
	if err := relief.Validate(d); err != nil {
		return model.HelpRequest{}, false, apiErrors.From(err)
	}
	r, ok := relief.FindRequest(s.requests, id)
	if !ok {
		s.log.Debug("AssignVolunteer: no-op, unknown request", zap.String("request", id))
		return model.HelpRequest{}, false, nil
	}
	if !relief.CanAssignVolunteer(actor, r, s.volunteers) {
		return model.HelpRequest{}, false, apiErrors.APIError{Code: apiErrors.NoCandidate, Message: "no available volunteers"}
	}
	vol, ok := relief.FindVolunteer(s.volunteers, d.VolunteerID)
	if !ok {
		s.log.Debug("AssignVolunteer: no-op, unknown volunteer", zap.String("volunteer", d.VolunteerID))
		return model.HelpRequest{}, false, nil
	}
	if vol.Status != model.VolunteerAvailable {
		return model.HelpRequest{}, false, apiErrors.APIError{
			Code:    apiErrors.NoCandidate,
			Message: "volunteer " + vol.ID + " is " + string(vol.Status),
		}
	}

	nextReqs, nextVols, applied, err := relief.AssignVolunteer(s.requests, s.volunteers, id, d, s.ids)
	if err != nil {
		return model.HelpRequest{}, false, apiErrors.From(err)
	}
	if !applied {
		s.log.Debug("AssignVolunteer: no-op", zap.String("request", id), zap.String("volunteer", d.VolunteerID))
		return model.HelpRequest{}, false, nil
	}
	s.requests, s.volunteers = nextReqs, nextVols
	s.saveRequests(ctx)
	s.saveVolunteers(ctx)
	s.log.Info("AssignVolunteer: success", zap.String("request", id), zap.String("volunteer", d.VolunteerID))
	r, _ = relief.FindRequest(s.requests, id)
	return r, true, nil
}

func (s *Service) UpdateAssignmentStatus(ctx context.Context, id, volunteerID string, status model.AssignmentStatus) (model.HelpRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := relief.Authorize(s.actor(), relief.ActionUpdateAssignment, nil, volunteerID); err != nil {
		return model.HelpRequest{}, false, apiErrors.From(err)
	}
	next, applied, err := relief.UpdateAssignmentStatus(s.requests, id, volunteerID, status)
	if err != nil {
		return model.HelpRequest{}, false, apiErrors.From(err)
	}
	return s.commitRequest(ctx, next, applied, id, "UpdateAssignmentStatus")
}

// commitRequest installs next and persists it when the transition applied.
func (s *Service) commitRequest(ctx context.Context, next []model.HelpRequest, applied bool, id, op string) (model.HelpRequest, bool, error) {
	if !applied {
		s.log.Debug(op+": no-op", zap.String("request", id))
		return model.HelpRequest{}, false, nil
	}
	s.requests = next
	s.saveRequests(ctx)
	s.log.Info(op+": success", zap.String("request", id))
	r, _ := relief.FindRequest(s.requests, id)
	return r, true, nil
}
