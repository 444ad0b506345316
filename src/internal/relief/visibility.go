package relief

import (
	"github.com/ce-fello/relief-hub/src/internal/model"
)

// CanView decides whether viewer may see r. A nil viewer is anonymous.
func CanView(viewer *model.User, r model.HelpRequest) bool {
	if viewer == nil {
		return r.IsPublic()
	}
	switch viewer.Role {
	case model.RoleAdmin:
		return true
	case model.RoleRequester:
		return r.AuthorID == viewer.ID || r.IsPublic()
	case model.RoleVolunteer:
		return r.HasVolunteer(viewer.ID) || r.IsPublic()
	case model.RoleVisitor:
		return r.IsPublic()
	}
	return false
}

// CanInteract decides whether viewer may add offers and comments to r.
func CanInteract(viewer *model.User, r model.HelpRequest) bool {
	if viewer == nil {
		return false
	}
	return viewer.Role == model.RoleAdmin ||
		r.Status == model.RequestApproved ||
		r.AuthorID == viewer.ID ||
		r.HasVolunteer(viewer.ID)
}

// CanAssignVolunteer gates the assign action: an admin who can interact with r
// while at least one volunteer is available.
func CanAssignVolunteer(viewer *model.User, r model.HelpRequest, volunteers []model.Volunteer) bool {
	if !CanInteract(viewer, r) || viewer.Role != model.RoleAdmin {
		return false
	}
	return len(AvailableVolunteers(volunteers)) > 0
}

func AvailableVolunteers(volunteers []model.Volunteer) []model.Volunteer {
	out := []model.Volunteer{}
	for _, v := range volunteers {
		if v.Status == model.VolunteerAvailable {
			out = append(out, v)
		}
	}
	return out
}
