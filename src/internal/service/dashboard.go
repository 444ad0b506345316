package service

import (
	"github.com/ce-fello/relief-hub/src/internal/api/apiErrors"
	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/ce-fello/relief-hub/src/internal/relief"
)

// Dashboard is the signed-in user's overview. Only the block matching the
// user's role is filled.
type Dashboard struct {
	User      model.User          `json:"user"`
	Admin     *AdminDashboard     `json:"admin,omitempty"`
	Requester *RequesterDashboard `json:"requester,omitempty"`
	Volunteer *VolunteerDashboard `json:"volunteer,omitempty"`
}

type AdminDashboard struct {
	Stats               relief.AdminStats   `json:"stats"`
	PendingRequests     []model.HelpRequest `json:"pendingRequests"`
	AvailableVolunteers []model.Volunteer   `json:"availableVolunteers"`
}

type RequesterDashboard struct {
	Stats      relief.RequesterStats `json:"stats"`
	MyRequests []model.HelpRequest   `json:"myRequests"`
}

type VolunteerDashboard struct {
	Stats         relief.VolunteerStats `json:"stats"`
	MyAssignments []model.HelpRequest   `json:"myAssignments"`
}

var errSignedOut = apiErrors.APIError{Code: apiErrors.Forbidden, Message: "sign in to view the dashboard"}

func (s *Service) Dashboard() (Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Dashboard{}, errSignedOut
	}
	u := *s.current
	d := Dashboard{User: u}
	switch u.Role {
	case model.RoleAdmin:
		pending := []model.HelpRequest{}
		for _, r := range s.requests {
			if r.Status == model.RequestPending {
				pending = append(pending, r)
			}
		}
		d.Admin = &AdminDashboard{
			Stats:               relief.ComputeAdminStats(s.requests, s.volunteers),
			PendingRequests:     pending,
			AvailableVolunteers: relief.AvailableVolunteers(s.volunteers),
		}
	case model.RoleRequester:
		d.Requester = &RequesterDashboard{
			Stats:      relief.ComputeRequesterStats(u, s.requests),
			MyRequests: relief.MyRequests(u, s.requests),
		}
	case model.RoleVolunteer:
		d.Volunteer = &VolunteerDashboard{
			Stats:         relief.ComputeVolunteerStats(u, s.requests),
			MyAssignments: relief.MyAssignments(u, s.requests),
		}
	}
	return d, nil
}
