package service

import (
	"encoding/json"
	"errors"

	"github.com/ce-fello/relief-hub/src/internal/model"
)

var (
	errNullBlob    = errors.New("blob holds null")
	errInvalidUser = errors.New("saved user has no id or role")
)

func decodeRequests(raw string) ([]model.HelpRequest, error) {
	var reqs []model.HelpRequest
	if err := json.Unmarshal([]byte(raw), &reqs); err != nil {
		return nil, err
	}
	if reqs == nil {
		return nil, errNullBlob
	}
	for i := range reqs {
		normalizeRequest(&reqs[i])
	}
	return reqs, nil
}

// normalizeRequest fills fields that older saved requests may lack.
func normalizeRequest(r *model.HelpRequest) {
	if r.Offers == nil {
		r.Offers = []model.HelpOffer{}
	}
	if r.Comments == nil {
		r.Comments = []model.Comment{}
	}
	if r.Volunteers == nil {
		r.Volunteers = []model.VolunteerAssignment{}
	}
	for j := range r.Volunteers {
		if r.Volunteers[j].Skills == nil {
			r.Volunteers[j].Skills = []string{}
		}
	}
	if r.Status == "" {
		r.Status = model.RequestApproved
	}
	if r.AuthorID == "" {
		r.AuthorID = "unknown"
	}
}

func decodeVolunteers(raw string) ([]model.Volunteer, error) {
	var vols []model.Volunteer
	if err := json.Unmarshal([]byte(raw), &vols); err != nil {
		return nil, err
	}
	if vols == nil {
		return nil, errNullBlob
	}
	for i := range vols {
		if vols[i].Skills == nil {
			vols[i].Skills = []string{}
		}
		if vols[i].AssignedRequests == nil {
			vols[i].AssignedRequests = []string{}
		}
	}
	return vols, nil
}

func decodeUser(raw string) (*model.User, error) {
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, err
	}
	if u.ID == "" || !u.Role.Valid() {
		return nil, errInvalidUser
	}
	return &u, nil
}

func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
