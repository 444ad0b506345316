package relief

type ResourceItem struct {
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
}

type EmergencyResource struct {
	Category string         `json:"category"`
	Items    []ResourceItem `json:"items"`
}

type PreparednessGuide struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

// SkillCategories are the skills a volunteer can pick when registering.
var SkillCategories = []string{
	"Medical Support",
	"Food Service",
	"Housing Assistance",
	"Transportation",
	"Construction",
	"Childcare",
	"Translation",
	"Emergency Response",
	"Community Outreach",
	"Pet Care",
	"Logistics",
	"Repairs",
}

func EmergencyResources() []EmergencyResource {
	return []EmergencyResource{
		{
			Category: "Emergency Contacts",
			Items: []ResourceItem{
				{Name: "Emergency Services", Contact: "911", Description: "Fire, Police, Medical Emergency"},
				{Name: "Disaster Hotline", Contact: "1-800-DISASTER", Description: "24/7 disaster assistance"},
				{Name: "Red Cross", Contact: "1-800-RED-CROSS", Description: "Emergency shelter and aid"},
				{Name: "Poison Control", Contact: "1-800-222-1222", Description: "Poison emergency assistance"},
			},
		},
		{
			Category: "Evacuation Centers",
			Items: []ResourceItem{
				{Name: "Community Center", Contact: "Zone 2", Description: "Capacity: 200 people, Pet-friendly"},
				{Name: "High School Gymnasium", Contact: "Zone 1", Description: "Capacity: 150 people, Medical station"},
				{Name: "Recreation Center", Contact: "Zone 3", Description: "Capacity: 100 people, Family rooms"},
			},
		},
		{
			Category: "Supply Distribution",
			Items: []ResourceItem{
				{Name: "Food Bank", Contact: "Main St & 5th", Description: "Daily 9AM-5PM, Free meals"},
				{Name: "Water Distribution", Contact: "City Park", Description: "Daily 8AM-6PM, Bottled water"},
				{Name: "Medical Supplies", Contact: "Health Center", Description: "24/7, First aid & medications"},
			},
		},
	}
}

func PreparednessGuides() []PreparednessGuide {
	return []PreparednessGuide{
		{
			Title:       "Emergency Kit Essentials",
			Description: "Build a comprehensive emergency kit for your family",
			Items: []string{
				"Water (1 gallon per person per day)",
				"Non-perishable food (3-day supply)",
				"Battery-powered radio",
				"Flashlight and extra batteries",
				"First aid kit",
				"Medications",
				"Important documents",
				"Cash and credit cards",
			},
		},
		{
			Title:       "Evacuation Planning",
			Description: "Create and practice your family evacuation plan",
			Items: []string{
				"Identify evacuation routes",
				"Choose meeting points",
				"Plan for pets",
				"Keep vehicle fueled",
				"Know shelter locations",
				"Practice the plan regularly",
			},
		},
		{
			Title:       "Communication Plan",
			Description: "Stay connected with family during emergencies",
			Items: []string{
				"Designate out-of-state contact",
				"Program emergency numbers",
				"Learn text messaging",
				"Keep devices charged",
				"Know local radio stations",
				"Share plan with family",
			},
		},
	}
}
