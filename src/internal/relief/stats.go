package relief

import (
	"github.com/ce-fello/relief-hub/src/internal/model"
)

type AdminStats struct {
	Pending             int `json:"pending"`
	Approved            int `json:"approved"`
	Rejected            int `json:"rejected"`
	AvailableVolunteers int `json:"availableVolunteers"`
	BusyVolunteers      int `json:"busyVolunteers"`
}

type RequesterStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
}

// VolunteerStats counts the requests on which the volunteer's own assignment
// is in the given state.
type VolunteerStats struct {
	Active    int `json:"active"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

func ComputeAdminStats(reqs []model.HelpRequest, vols []model.Volunteer) AdminStats {
	var s AdminStats
	for _, r := range reqs {
		switch r.Status {
		case model.RequestPending:
			s.Pending++
		case model.RequestApproved:
			s.Approved++
		case model.RequestRejected:
			s.Rejected++
		}
	}
	for _, v := range vols {
		switch v.Status {
		case model.VolunteerAvailable:
			s.AvailableVolunteers++
		case model.VolunteerBusy:
			s.BusyVolunteers++
		}
	}
	return s
}

// MyRequests lists the requests authored by user.
func MyRequests(user model.User, reqs []model.HelpRequest) []model.HelpRequest {
	out := []model.HelpRequest{}
	for _, r := range reqs {
		if r.AuthorID == user.ID {
			out = append(out, r)
		}
	}
	return out
}

func ComputeRequesterStats(user model.User, reqs []model.HelpRequest) RequesterStats {
	mine := MyRequests(user, reqs)
	s := RequesterStats{Total: len(mine)}
	for _, r := range mine {
		switch r.Status {
		case model.RequestPending:
			s.Pending++
		case model.RequestApproved:
			s.Approved++
		}
	}
	return s
}

// MyAssignments lists the requests user is assigned to as a volunteer.
func MyAssignments(user model.User, reqs []model.HelpRequest) []model.HelpRequest {
	out := []model.HelpRequest{}
	for _, r := range reqs {
		if r.HasVolunteer(user.ID) {
			out = append(out, r)
		}
	}
	return out
}

func ComputeVolunteerStats(user model.User, reqs []model.HelpRequest) VolunteerStats {
	var s VolunteerStats
	for _, r := range MyAssignments(user, reqs) {
		if hasAssignment(r, user.ID, model.AssignmentActive) {
			s.Active++
		}
		if hasAssignment(r, user.ID, model.AssignmentPending) {
			s.Pending++
		}
		if hasAssignment(r, user.ID, model.AssignmentCompleted) {
			s.Completed++
		}
	}
	return s
}

func hasAssignment(r model.HelpRequest, volunteerID string, status model.AssignmentStatus) bool {
	for _, a := range r.Volunteers {
		if a.VolunteerID == volunteerID && a.Status == status {
			return true
		}
	}
	return false
}
