package relief

import (
	"testing"

	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeAdminStats(t *testing.T) {
	reqs := append(SeedRequests(),
		model.HelpRequest{ID: "4", Status: model.RequestPending},
		model.HelpRequest{ID: "5", Status: model.RequestRejected},
	)

	s := ComputeAdminStats(reqs, SeedVolunteers())

	assert.Equal(t, AdminStats{Pending: 1, Approved: 3, Rejected: 1, AvailableVolunteers: 2, BusyVolunteers: 3}, s)
}

func TestComputeRequesterStats(t *testing.T) {
	me := model.User{ID: "me", Role: model.RoleRequester}
	reqs := []model.HelpRequest{
		{ID: "1", AuthorID: "me", Status: model.RequestPending},
		{ID: "2", AuthorID: "me", Status: model.RequestApproved},
		{ID: "3", AuthorID: "me", Status: model.RequestRejected},
		{ID: "4", AuthorID: "other", Status: model.RequestApproved},
	}

	assert.Equal(t, RequesterStats{Total: 3, Pending: 1, Approved: 1}, ComputeRequesterStats(me, reqs))
	assert.Len(t, MyRequests(me, reqs), 3)
}

func TestComputeVolunteerStats(t *testing.T) {
	me := model.User{ID: "vol1", Role: model.RoleVolunteer}
	reqs, _, _, _ := AssignVolunteer(SeedRequests(), SeedVolunteers(), "2", AssignmentDraft{VolunteerID: "vol1", Message: "help"}, seqIDs("as-"))

	assert.Equal(t, VolunteerStats{Active: 1, Pending: 1}, ComputeVolunteerStats(me, reqs))
	assert.Equal(t, []string{"1", "2"}, requestIDs(MyAssignments(me, reqs)))
}
