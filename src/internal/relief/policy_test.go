package relief

import (
	"testing"

	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_NoUser(t *testing.T) {
	err := Authorize(nil, ActionSubmitRequest, nil, "")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestAuthorize_AdminOnlyActions(t *testing.T) {
	for _, action := range []Action{ActionApproveRequest, ActionRejectRequest, ActionAssignVolunteer} {
		assert.NoError(t, Authorize(&model.User{ID: "a", Role: model.RoleAdmin}, action, nil, ""), action)
		for _, role := range []model.Role{model.RoleRequester, model.RoleVolunteer, model.RoleVisitor} {
			err := Authorize(&model.User{ID: "u", Role: role}, action, nil, "")
			var aerr *AuthorizationError
			require.ErrorAs(t, err, &aerr)
			assert.Equal(t, role, aerr.Role)
			assert.Equal(t, action, aerr.Action)
			assert.ErrorIs(t, err, model.ErrForbidden)
		}
	}
}

func TestAuthorize_SubmitRequest(t *testing.T) {
	assert.NoError(t, Authorize(&model.User{Role: model.RoleRequester}, ActionSubmitRequest, nil, ""))
	assert.NoError(t, Authorize(&model.User{Role: model.RoleAdmin}, ActionSubmitRequest, nil, ""))
	assert.ErrorIs(t, Authorize(&model.User{Role: model.RoleVolunteer}, ActionSubmitRequest, nil, ""), model.ErrForbidden)
	assert.ErrorIs(t, Authorize(&model.User{Role: model.RoleVisitor}, ActionSubmitRequest, nil, ""), model.ErrForbidden)
}

func TestAuthorize_OffersFollowInteractionRule(t *testing.T) {
	pending := &model.HelpRequest{ID: "1", AuthorID: "owner", Status: model.RequestPending}

	assert.NoError(t, Authorize(&model.User{ID: "owner", Role: model.RoleRequester}, ActionAddOffer, pending, ""))
	assert.ErrorIs(t, Authorize(&model.User{ID: "x", Role: model.RoleRequester}, ActionAddComment, pending, ""), model.ErrForbidden)
	assert.ErrorIs(t, Authorize(&model.User{ID: "x", Role: model.RoleAdmin}, ActionAddOffer, nil, ""), model.ErrForbidden)
}

func TestAuthorize_UpdateAssignment(t *testing.T) {
	assert.NoError(t, Authorize(&model.User{ID: "a", Role: model.RoleAdmin}, ActionUpdateAssignment, nil, "vol1"))
	assert.NoError(t, Authorize(&model.User{ID: "vol1", Role: model.RoleVolunteer}, ActionUpdateAssignment, nil, "vol1"))
	assert.ErrorIs(t, Authorize(&model.User{ID: "vol2", Role: model.RoleVolunteer}, ActionUpdateAssignment, nil, "vol1"), model.ErrForbidden)
	assert.ErrorIs(t, Authorize(&model.User{ID: "vol1", Role: model.RoleRequester}, ActionUpdateAssignment, nil, "vol1"), model.ErrForbidden)
}

func TestAuthorize_Volunteers(t *testing.T) {
	for _, action := range []Action{ActionRegisterVolunteer, ActionListVolunteers} {
		assert.NoError(t, Authorize(&model.User{Role: model.RoleAdmin}, action, nil, ""))
		assert.NoError(t, Authorize(&model.User{Role: model.RoleVolunteer}, action, nil, ""))
		assert.ErrorIs(t, Authorize(&model.User{Role: model.RoleRequester}, action, nil, ""), model.ErrForbidden)
	}
}
