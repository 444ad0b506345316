package relief

import (
	"slices"
	"strings"

	"github.com/ce-fello/relief-hub/src/internal/model"
)

// All matches every category or skill in a query.
const All = "all"

type Query struct {
	Search   string
	Category string
}

// FilterRequests applies the visibility rules and then the text and category
// filters, keeping the input order.
func FilterRequests(viewer *model.User, reqs []model.HelpRequest, q Query) []model.HelpRequest {
	term := strings.ToLower(q.Search)
	out := []model.HelpRequest{}
	for _, r := range reqs {
		if !CanView(viewer, r) {
			continue
		}
		if !matchesCategory(r.Category, q.Category) {
			continue
		}
		if !containsFold(term, r.Title, r.Description, r.Location) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type VolunteerQuery struct {
	Search string
	Skill  string
}

// FilterVolunteers is the volunteer directory search over name, skills and experience.
func FilterVolunteers(vols []model.Volunteer, q VolunteerQuery) []model.Volunteer {
	term := strings.ToLower(q.Search)
	out := []model.Volunteer{}
	for _, v := range vols {
		if q.Skill != "" && q.Skill != All && !slices.Contains(v.Skills, q.Skill) {
			continue
		}
		if !containsFold(term, v.Name, v.Experience) && !containsFold(term, v.Skills...) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesCategory(c model.Category, want string) bool {
	return want == "" || want == All || string(c) == want
}

// containsFold reports whether any field contains term; term must already be lower case.
func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
