package model

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
	JoinDate string `json:"joinDate"`
}

type HelpRequest struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	Category    Category              `json:"category"`
	Urgency     Urgency               `json:"urgency"`
	Timestamp   string                `json:"timestamp"`
	Author      string                `json:"author"`
	AuthorID    string                `json:"authorId"`
	Offers      []HelpOffer           `json:"offers"`
	Comments    []Comment             `json:"comments"`
	Volunteers  []VolunteerAssignment `json:"volunteers"`
	Status      RequestStatus         `json:"status"`
	IsPrivate   bool                  `json:"isPrivate"`
}

// HasVolunteer reports whether volunteerID holds an assignment on the request.
func (r HelpRequest) HasVolunteer(volunteerID string) bool {
	for _, v := range r.Volunteers {
		if v.VolunteerID == volunteerID {
			return true
		}
	}
	return false
}

// IsPublic is true for approved requests not marked private.
func (r HelpRequest) IsPublic() bool {
	return !r.IsPrivate && r.Status == RequestApproved
}

type HelpOffer struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Contact   string `json:"contact"`
}

type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type VolunteerAssignment struct {
	ID               string           `json:"id"`
	VolunteerID      string           `json:"volunteerId"`
	VolunteerName    string           `json:"volunteerName"`
	VolunteerContact string           `json:"volunteerContact"`
	Skills           []string         `json:"skills"`
	Status           AssignmentStatus `json:"status"`
	AssignedDate     string           `json:"assignedDate"`
	Message          string           `json:"message"`
}

type Volunteer struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Skills           []string        `json:"skills"`
	Availability     string          `json:"availability"`
	Experience       string          `json:"experience"`
	Status           VolunteerStatus `json:"status"`
	AssignedRequests []string        `json:"assignedRequests"`
	CompletedTasks   int             `json:"completedTasks"`
	Rating           float64         `json:"rating"`
	JoinDate         string          `json:"joinDate"`
}

type AppError string

func (e AppError) Error() string { return string(e) }

const (
	ErrNotFound    = AppError("NOT_FOUND")
	ErrValidation  = AppError("VALIDATION_ERROR")
	ErrForbidden   = AppError("FORBIDDEN")
	ErrInvalidEnum = AppError("INVALID_ENUM")
)
