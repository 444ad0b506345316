package relief

import (
	"github.com/ce-fello/relief-hub/src/internal/model"
)

// SeedRequests is the fallback request list used when nothing valid is persisted.
// Each call returns a fresh copy.
func SeedRequests() []model.HelpRequest {
	return []model.HelpRequest{
		{
			ID:    "1",
			Title: "Need temporary shelter for family of 4",
			Description: "Our home was damaged in the recent flooding. We need temporary accommodation for 2 adults and 2 " +
				"children (ages 8 and 12) for approximately 2-3 weeks while repairs are made.",
			Location:  "Downtown District, Zone 3",
			Category:  model.CategoryShelter,
			Urgency:   model.UrgencyHigh,
			Timestamp: "2 hours ago",
			Author:    "Sarah M.",
			AuthorID:  "user1",
			Offers: []model.HelpOffer{
				{
					ID:        "1",
					Author:    "Mike R.",
					Message:   "I have a guest house available. Can accommodate your family. Contact me at mike.r@email.com",
					Timestamp: "1 hour ago",
					Contact:   "mike.r@email.com",
				},
			},
			Comments: []model.Comment{
				{
					ID:        "1",
					Author:    "Lisa K.",
					Message:   "I can provide bedding and clothes for the children if needed.",
					Timestamp: "30 minutes ago",
				},
			},
			Volunteers: []model.VolunteerAssignment{
				{
					ID:               "1",
					VolunteerID:      "vol1",
					VolunteerName:    "Emma Thompson",
					VolunteerContact: "emma.t@email.com",
					Skills:           []string{"Housing Assistance", "Family Support"},
					Status:           model.AssignmentActive,
					AssignedDate:     "1 hour ago",
					Message:          "I can help coordinate temporary housing and provide family support services.",
				},
			},
			Status:    model.RequestApproved,
			IsPrivate: false,
		},
		{
			ID:    "2",
			Title: "Medical supplies needed urgently",
			Description: "Local clinic is running low on basic medical supplies including bandages, antiseptics, and " +
				"pain medication. Serving 200+ displaced families.",
			Location:  "Medical Center, Zone 1",
			Category:  model.CategoryMedical,
			Urgency:   model.UrgencyCritical,
			Timestamp: "4 hours ago",
			Author:    "Dr. James Wilson",
			AuthorID:  "user2",
			Offers:    []model.HelpOffer{},
			Comments:  []model.Comment{},
			Volunteers: []model.VolunteerAssignment{
				{
					ID:               "2",
					VolunteerID:      "vol2",
					VolunteerName:    "Dr. Maria Rodriguez",
					VolunteerContact: "maria.r@hospital.com",
					Skills:           []string{"Medical Support", "Emergency Response"},
					Status:           model.AssignmentActive,
					AssignedDate:     "2 hours ago",
					Message:          "I can provide medical expertise and help coordinate supply distribution.",
				},
			},
			Status:    model.RequestApproved,
			IsPrivate: false,
		},
		{
			ID:    "3",
			Title: "Food distribution volunteers needed",
			Description: "We need 10-15 volunteers to help distribute meals to affected families. Shift times: " +
				"8AM-12PM and 1PM-5PM daily.",
			Location:  "Community Center, Zone 2",
			Category:  model.CategoryVolunteers,
			Urgency:   model.UrgencyMedium,
			Timestamp: "6 hours ago",
			Author:    "Relief Coordinator",
			AuthorID:  "user3",
			Offers: []model.HelpOffer{
				{
					ID:        "2",
					Author:    "Emma T.",
					Message:   "I can volunteer for the morning shift. Available all week.",
					Timestamp: "3 hours ago",
					Contact:   "emma.t@email.com",
				},
				{
					ID:        "3",
					Author:    "Carlos M.",
					Message:   "Count me in for afternoon shifts. I have experience in food service.",
					Timestamp: "2 hours ago",
					Contact:   "carlos.m@email.com",
				},
			},
			Comments: []model.Comment{},
			Volunteers: []model.VolunteerAssignment{
				{
					ID:               "3",
					VolunteerID:      "vol3",
					VolunteerName:    "Carlos Martinez",
					VolunteerContact: "carlos.m@email.com",
					Skills:           []string{"Food Service", "Community Outreach"},
					Status:           model.AssignmentActive,
					AssignedDate:     "2 hours ago",
					Message:          "Leading the afternoon food distribution team with 5 other volunteers.",
				},
			},
			Status:    model.RequestApproved,
			IsPrivate: false,
		},
	}
}

// SeedVolunteers is the fallback volunteer roster. Each call returns a fresh copy.
func SeedVolunteers() []model.Volunteer {
	return []model.Volunteer{
		{
			ID:               "vol1",
			Name:             "Emma Thompson",
			Email:            "emma.t@email.com",
			Phone:            "(555) 123-4567",
			Skills:           []string{"Housing Assistance", "Family Support", "Childcare"},
			Availability:     "Weekdays",
			Experience:       "5 years experience in social work and family crisis support",
			Status:           model.VolunteerBusy,
			AssignedRequests: []string{"1"},
			CompletedTasks:   12,
			Rating:           4.9,
			JoinDate:         "2 weeks ago",
		},
		{
			ID:               "vol2",
			Name:             "Dr. Maria Rodriguez",
			Email:            "maria.r@hospital.com",
			Phone:            "(555) 234-5678",
			Skills:           []string{"Medical Support", "Emergency Response", "Triage"},
			Availability:     "24/7 Emergency Response",
			Experience:       "15 years emergency medicine, disaster response certified",
			Status:           model.VolunteerBusy,
			AssignedRequests: []string{"2"},
			CompletedTasks:   28,
			Rating:           5.0,
			JoinDate:         "1 month ago",
		},
		{
			ID:               "vol3",
			Name:             "Carlos Martinez",
			Email:            "carlos.m@email.com",
			Phone:            "(555) 345-6789",
			Skills:           []string{"Food Service", "Community Outreach", "Translation"},
			Availability:     "Evenings",
			Experience:       "Restaurant manager, bilingual Spanish/English",
			Status:           model.VolunteerBusy,
			AssignedRequests: []string{"3"},
			CompletedTasks:   8,
			Rating:           4.8,
			JoinDate:         "1 week ago",
		},
		{
			ID:               "vol4",
			Name:             "Sarah Johnson",
			Email:            "sarah.j@email.com",
			Phone:            "(555) 456-7890",
			Skills:           []string{"Transportation", "Logistics", "Pet Care"},
			Availability:     "Flexible",
			Experience:       "Uber driver, pet owner, logistics coordinator",
			Status:           model.VolunteerAvailable,
			AssignedRequests: []string{},
			CompletedTasks:   15,
			Rating:           4.7,
			JoinDate:         "3 weeks ago",
		},
		{
			ID:               "vol5",
			Name:             "Michael Chen",
			Email:            "michael.c@email.com",
			Phone:            "(555) 567-8901",
			Skills:           []string{"Construction", "Repairs", "Heavy Lifting"},
			Availability:     "Weekends",
			Experience:       "Construction foreman, 20 years building experience",
			Status:           model.VolunteerAvailable,
			AssignedRequests: []string{},
			CompletedTasks:   22,
			Rating:           4.9,
			JoinDate:         "1 month ago",
		},
	}
}
