package relief

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/ce-fello/relief-hub/src/internal/model"
)

// JustNow is the display timestamp stamped on every entity created in-session.
const JustNow = "Just now"

// IDGen yields identifiers unique within a session.
type IDGen func() string

func UUIDGen() IDGen { return uuid.NewString }

// The transitions below never modify their inputs: every changed request or
// volunteer is copied, and the returned slice is freshly allocated. When
// nothing applies the input slice is returned as is.

func SubmitRequest(reqs []model.HelpRequest, author *model.User, d RequestDraft, ids IDGen) ([]model.HelpRequest, model.HelpRequest, error) {
	if author == nil {
		return reqs, model.HelpRequest{}, errNoUser
	}
	if err := Validate(d); err != nil {
		return reqs, model.HelpRequest{}, err
	}
	r := model.HelpRequest{
		ID:          ids(),
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Location:    strings.TrimSpace(d.Location),
		Category:    d.Category,
		Urgency:     d.Urgency,
		Timestamp:   JustNow,
		Author:      author.Name,
		AuthorID:    author.ID,
		Offers:      []model.HelpOffer{},
		Comments:    []model.Comment{},
		Volunteers:  []model.VolunteerAssignment{},
		Status:      model.RequestPending,
		IsPrivate:   d.IsPrivate,
	}
	out := make([]model.HelpRequest, 0, len(reqs)+1)
	out = append(out, r)
	out = append(out, reqs...)
	return out, r, nil
}

func ApproveRequest(reqs []model.HelpRequest, id string) ([]model.HelpRequest, bool) {
	return decide(reqs, id, model.RequestApproved)
}

func RejectRequest(reqs []model.HelpRequest, id string) ([]model.HelpRequest, bool) {
	return decide(reqs, id, model.RequestRejected)
}

// decide moves a pending request to its review outcome; any other status is left alone.
func decide(reqs []model.HelpRequest, id string, to model.RequestStatus) ([]model.HelpRequest, bool) {
	i := indexRequest(reqs, id)
	if i < 0 || reqs[i].Status != model.RequestPending {
		return reqs, false
	}
	return replaceRequest(reqs, i, func(r *model.HelpRequest) { r.Status = to }), true
}

func AddOffer(reqs []model.HelpRequest, id string, d OfferDraft, ids IDGen) ([]model.HelpRequest, bool, error) {
	if err := Validate(d); err != nil {
		return reqs, false, err
	}
	i := indexRequest(reqs, id)
	if i < 0 {
		return reqs, false, nil
	}
	offer := model.HelpOffer{
		ID:        ids(),
		Author:    d.Author,
		Message:   strings.TrimSpace(d.Message),
		Timestamp: JustNow,
		Contact:   strings.TrimSpace(d.Contact),
	}
	return replaceRequest(reqs, i, func(r *model.HelpRequest) {
		r.Offers = append(slices.Clip(r.Offers), offer)
	}), true, nil
}

func AddComment(reqs []model.HelpRequest, id string, d CommentDraft, ids IDGen) ([]model.HelpRequest, bool, error) {
	if err := Validate(d); err != nil {
		return reqs, false, err
	}
	i := indexRequest(reqs, id)
	if i < 0 {
		return reqs, false, nil
	}
	c := model.Comment{
		ID:        ids(),
		Author:    d.Author,
		Message:   strings.TrimSpace(d.Message),
		Timestamp: JustNow,
	}
	return replaceRequest(reqs, i, func(r *model.HelpRequest) {
		r.Comments = append(slices.Clip(r.Comments), c)
	}), true, nil
}

// AssignVolunteer links a volunteer to a request. Both sides are written
// together: the request gains an assignment carrying a snapshot of the
// volunteer's skills, and the volunteer gains the request id and turns busy.
// If either id does not resolve, both collections come back unchanged.
func AssignVolunteer(reqs []model.HelpRequest, vols []model.Volunteer, requestID string, d AssignmentDraft, ids IDGen) ([]model.HelpRequest, []model.Volunteer, bool, error) {
	if err := Validate(d); err != nil {
		return reqs, vols, false, err
	}
	ri := indexRequest(reqs, requestID)
	vi := indexVolunteer(vols, d.VolunteerID)
	if ri < 0 || vi < 0 {
		return reqs, vols, false, nil
	}
	vol := vols[vi]
	a := model.VolunteerAssignment{
		ID:               ids(),
		VolunteerID:      vol.ID,
		VolunteerName:    vol.Name,
		VolunteerContact: vol.Email,
		Skills:           slices.Clone(vol.Skills),
		Status:           model.AssignmentPending,
		AssignedDate:     JustNow,
		Message:          strings.TrimSpace(d.Message),
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
	outReqs := replaceRequest(reqs, ri, func(r *model.HelpRequest) {
		r.Volunteers = append(slices.Clip(r.Volunteers), a)
	})
	outVols := slices.Clone(vols)
	vol.AssignedRequests = append(slices.Clip(vol.AssignedRequests), requestID)
	vol.Status = model.VolunteerBusy
	outVols[vi] = vol
	return outReqs, outVols, true, nil
}

// UpdateAssignmentStatus sets the status of every assignment of volunteerID on
// the request. Any order of statuses is accepted.
func UpdateAssignmentStatus(reqs []model.HelpRequest, requestID, volunteerID string, status model.AssignmentStatus) ([]model.HelpRequest, bool, error) {
	if !status.Valid() {
		return reqs, false, &ValidationError{Field: "status", Reason: "is not a recognised value"}
	}
	i := indexRequest(reqs, requestID)
	if i < 0 || !reqs[i].HasVolunteer(volunteerID) {
		return reqs, false, nil
	}
	return replaceRequest(reqs, i, func(r *model.HelpRequest) {
		r.Volunteers = slices.Clone(r.Volunteers)
		for j := range r.Volunteers {
			if r.Volunteers[j].VolunteerID == volunteerID {
				r.Volunteers[j].Status = status
			}
		}
	}), true, nil
}

func RegisterVolunteer(vols []model.Volunteer, d VolunteerDraft, ids IDGen) ([]model.Volunteer, model.Volunteer, error) {
	if err := Validate(d); err != nil {
		return vols, model.Volunteer{}, err
	}
	availability := strings.TrimSpace(d.Availability)
	if availability == "" {
		availability = "Flexible"
	}
	v := model.Volunteer{
		ID:               ids(),
		Name:             strings.TrimSpace(d.Name),
		Email:            strings.TrimSpace(d.Email),
		Phone:            strings.TrimSpace(d.Phone),
		Skills:           slices.Clone(d.Skills),
		Availability:     availability,
		Experience:       strings.TrimSpace(d.Experience),
		Status:           model.VolunteerAvailable,
		AssignedRequests: []string{},
		CompletedTasks:   0,
		Rating:           5.0,
		JoinDate:         JustNow,
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
	out := make([]model.Volunteer, 0, len(vols)+1)
	out = append(out, v)
	out = append(out, vols...)
	return out, v, nil
}

func FindRequest(reqs []model.HelpRequest, id string) (model.HelpRequest, bool) {
	if i := indexRequest(reqs, id); i >= 0 {
		return reqs[i], true
	}
	return model.HelpRequest{}, false
}

func FindVolunteer(vols []model.Volunteer, id string) (model.Volunteer, bool) {
	if i := indexVolunteer(vols, id); i >= 0 {
		return vols[i], true
	}
	return model.Volunteer{}, false
}

func indexRequest(reqs []model.HelpRequest, id string) int {
	return slices.IndexFunc(reqs, func(r model.HelpRequest) bool { return r.ID == id })
}

func indexVolunteer(vols []model.Volunteer, id string) int {
	return slices.IndexFunc(vols, func(v model.Volunteer) bool { return v.ID == id })
}

func replaceRequest(reqs []model.HelpRequest, i int, edit func(*model.HelpRequest)) []model.HelpRequest {
	out := slices.Clone(reqs)
	r := out[i]
	edit(&r)
	out[i] = r
	return out
}
