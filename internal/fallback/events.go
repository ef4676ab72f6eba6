package fallback

import "github.com/campusconnect/portal-bff/internal/domain"

var Events = []domain.Event{
	{
		ID:               "fallback-event-1",
		Title:            "TechSprint Hackathon",
		ShortDescription: "24-hour coding sprint hosted by the CS department.",
		Description:      "Teams of up to four build a working prototype in 24 hours. Mentors from industry, free meals, and prizes for the top three teams.",
		Category:         domain.EventTechnical,
		Date:             "2025-03-14",
		EndDate:          "2025-03-15",
		Time:             "09:00",
		Location:         "Innovation Lab, Block C",
		Organizer:        "Computer Science Department",
		Contact:          "techsprint@campus.edu",
		Attendees:        180,
		MaxAttendees:     200,
		Image:            "/assets/events/techsprint.jpg",
		Tags:             []string{"hackathon", "coding", "technical"},
		Schedule: []domain.EventDay{
			{
				Day: "Day 1",
				Sessions: []domain.EventSession{
					{Time: "09:00", Title: "Opening & team formation", Venue: "Innovation Lab"},
					{Time: "10:00", Title: "Hacking begins", Venue: "Innovation Lab"},
				},
			},
			{
				Day: "Day 2",
				Sessions: []domain.EventSession{
					{Time: "10:00", Title: "Demos & judging", Venue: "Auditorium"},
				},
			},
		},
		Photos: []domain.EventPhoto{
			{URL: "/assets/events/techsprint-1.jpg", Caption: "Last year's winners"},
		},
	},
	{
		ID:               "fallback-event-2",
		Title:            "Spring Music Night",
		ShortDescription: "An evening of live performances on the main lawn.",
		Description:      "Student bands and the campus choir perform under the open sky. Food stalls open from 6pm.",
		Category:         domain.EventCultural,
		Date:             "2025-04-02",
		EndDate:          "2025-04-02",
		Time:             "18:30",
		Location:         "Main Lawn",
		Organizer:        "Cultural Committee",
		Contact:          "culturals@campus.edu",
		Attendees:        320,
		MaxAttendees:     500,
		Image:            "/assets/events/music-night.jpg",
		Tags:             []string{"music", "cultural", "live"},
		Schedule:         []domain.EventDay{},
		Photos:           []domain.EventPhoto{},
	},
	{
		ID:               "fallback-event-3",
		Title:            "Inter-Hostel Cricket Cup",
		ShortDescription: "Annual knockout tournament between hostels.",
		Description:      "Eight hostel teams compete over two weekends. Finals on the main ground with live commentary.",
		Category:         domain.EventSports,
		Date:             "2025-02-20",
		EndDate:          "2025-03-01",
		Time:             "07:30",
		Location:         "Main Sports Ground",
		Organizer:        "Sports Council",
		Contact:          "sports@campus.edu",
		Attendees:        96,
		MaxAttendees:     120,
		Image:            "/assets/events/cricket-cup.jpg",
		Tags:             []string{"cricket", "sports", "tournament"},
		Schedule:         []domain.EventDay{},
		Photos:           []domain.EventPhoto{},
	},
}
