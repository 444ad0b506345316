package model

import "fmt"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
	RoleRequester Role = "requester"
	RoleVisitor   Role = "visitor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVolunteer, RoleRequester, RoleVisitor:
		return true
	}
	return false
}

func (r *Role) UnmarshalText(b []byte) error {
	return parseInto(r, Role(b), "role")
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestCompleted RequestStatus = "completed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected, RequestCompleted:
		return true
	}
	return false
}

// UnmarshalText accepts an empty status; persisted requests written before
// the approval workflow existed carry none and are normalised on load.
func (s *RequestStatus) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*s = ""
		return nil
	}
	return parseInto(s, RequestStatus(b), "request status")
}

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

func (u *Urgency) UnmarshalText(b []byte) error {
	return parseInto(u, Urgency(b), "urgency")
}

type Category string

const (
	CategoryShelter    Category = "shelter"
	CategoryFood       Category = "food"
	CategoryMedical    Category = "medical"
	CategoryVolunteers Category = "volunteers"
	CategorySupplies   Category = "supplies"
	CategoryTransport  Category = "transport"
)

// Categories lists every request category in display order.
var Categories = []Category{
	CategoryShelter,
	CategoryFood,
	CategoryMedical,
	CategoryVolunteers,
	CategorySupplies,
	CategoryTransport,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) Label() string {
	switch c {
	case CategoryShelter:
		return "Shelter"
	case CategoryFood:
		return "Food & Water"
	case CategoryMedical:
		return "Medical"
	case CategoryVolunteers:
		return "Volunteers"
	case CategorySupplies:
		return "Supplies"
	case CategoryTransport:
		return "Transportation"
	}
	return string(c)
}

func (c *Category) UnmarshalText(b []byte) error {
	return parseInto(c, Category(b), "category")
}

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentAccepted, AssignmentActive, AssignmentCompleted:
		return true
	}
	return false
}

func (s *AssignmentStatus) UnmarshalText(b []byte) error {
	return parseInto(s, AssignmentStatus(b), "assignment status")
}

// ParseAssignmentStatus is the only way a raw string becomes an AssignmentStatus.
func ParseAssignmentStatus(raw string) (AssignmentStatus, error) {
	var s AssignmentStatus
	if err := s.UnmarshalText([]byte(raw)); err != nil {
		return "", err
	}
	return s, nil
}

type VolunteerStatus string

const (
	VolunteerAvailable VolunteerStatus = "available"
	VolunteerBusy      VolunteerStatus = "busy"
	VolunteerInactive  VolunteerStatus = "inactive"
)

func (s VolunteerStatus) Valid() bool {
	switch s {
	case VolunteerAvailable, VolunteerBusy, VolunteerInactive:
		return true
	}
	return false
}

func (s *VolunteerStatus) UnmarshalText(b []byte) error {
	return parseInto(s, VolunteerStatus(b), "volunteer status")
}

type enum interface {
	~string
	Valid() bool
}

func parseInto[T enum](dst *T, v T, kind string) error {
	if !v.Valid() {
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidEnum, kind, string(v))
	}
	*dst = v
	return nil
}
