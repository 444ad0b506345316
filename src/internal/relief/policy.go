package relief

import (
	"github.com/ce-fello/relief-hub/src/internal/model"
)

type Action string

const (
	ActionSubmitRequest     Action = "submit_request"
	ActionApproveRequest    Action = "approve_request"
	ActionRejectRequest     Action = "reject_request"
	ActionAddOffer          Action = "add_offer"
	ActionAddComment        Action = "add_comment"
	ActionAssignVolunteer   Action = "assign_volunteer"
	ActionUpdateAssignment  Action = "update_assignment"
	ActionRegisterVolunteer Action = "register_volunteer"
	ActionListVolunteers    Action = "list_volunteers"
)

// Authorize checks actor against the role policy for action. r is the target
// request for request-scoped actions and may be nil otherwise. For
// ActionUpdateAssignment, subject is the assignment's volunteer id.
func Authorize(actor *model.User, action Action, r *model.HelpRequest, subject string) error {
	if actor == nil {
		return errNoUser
	}
	if allowed(actor, action, r, subject) {
		return nil
	}
	return &AuthorizationError{Role: actor.Role, Action: action}
}

func allowed(actor *model.User, action Action, r *model.HelpRequest, subject string) bool {
	switch action {
	case ActionSubmitRequest:
		return actor.Role == model.RoleRequester || actor.Role == model.RoleAdmin
	case ActionApproveRequest, ActionRejectRequest, ActionAssignVolunteer:
		return actor.Role == model.RoleAdmin
	case ActionAddOffer, ActionAddComment:
		return r != nil && CanInteract(actor, *r)
	case ActionUpdateAssignment:
		return actor.Role == model.RoleAdmin || (actor.Role == model.RoleVolunteer && actor.ID == subject)
	case ActionRegisterVolunteer, ActionListVolunteers:
		return actor.Role == model.RoleAdmin || actor.Role == model.RoleVolunteer
	}
	return false
}
