package fallback

import "github.com/campusconnect/portal-bff/internal/domain"

var Demands = []domain.Demand{
	{
		ID:               "fallback-demand-1",
		Title:            "Extend library hours during exams",
		ShortDescription: "Keep the central library open until 2am in exam weeks.",
		Description:      "The reading halls fill up by 8pm during end-sems. Extending closing time to 2am would ease the crunch.",
		Category:         domain.DemandAcademic,
		Status:           domain.StatusInProgress,
		Progress:         60,
		DateSubmitted:    "2025-01-12",
		SubmittedBy:      "Student Council",
		Supporters:       412,
		Updates: []domain.DemandUpdate{
			{Date: "2025-01-12", Content: "Demand submitted"},
			{Date: "2025-01-28", Content: "Library committee agreed to a trial during mid-sems"},
		},
		Tags: []string{"library", "exams", "academic"},
	},
	{
		ID:               "fallback-demand-2",
		Title:            "Fix the hostel WiFi dead zones",
		ShortDescription: "Blocks D and E lose connectivity above the second floor.",
		Description:      "Repeated complaints about dropped connections in the upper floors of D and E blocks. Requesting additional access points.",
		Category:         domain.DemandTechnology,
		Status:           domain.StatusPending,
		Progress:         10,
		DateSubmitted:    "2025-02-03",
		SubmittedBy:      "Residents of Block D",
		Supporters:       267,
		Updates: []domain.DemandUpdate{
			{Date: "2025-02-03", Content: "Demand submitted"},
		},
		Tags: []string{"wifi", "hostel", "technology"},
	},
	{
		ID:               "fallback-demand-3",
		Title:            "More vegetarian options in the mess",
		ShortDescription: "Weekly menu rotation with at least two veg mains per meal.",
		Description:      "The current menu repeats the same three dishes. Requesting a rotating menu reviewed each month with student input.",
		Category:         domain.DemandFood,
		Status:           domain.StatusImplemented,
		Progress:         100,
		DateSubmitted:    "2024-11-20",
		SubmittedBy:      "Mess Committee",
		Supporters:       523,
		Updates: []domain.DemandUpdate{
			{Date: "2024-11-20", Content: "Demand submitted"},
			{Date: "2024-12-10", Content: "New menu approved"},
			{Date: "2025-01-05", Content: "Rotation live in both messes"},
		},
		Tags: []string{"mess", "food", "menu"},
	},
}
