package fallback

import "github.com/campusconnect/portal-bff/internal/domain"

var Fests = []domain.Fest{
	{
		ID:               "fallback-fest-1",
		Name:             "Aurora",
		ShortDescription: "The annual cultural festival, three days of music, dance and theatre.",
		Description:      "Aurora brings colleges from across the state for competitions in music, dance, drama, fine arts and literary events, capped by a pro-night.",
		Type:             domain.FestCultural,
		StartDate:        "2025-03-21",
		EndDate:          "2025-03-23",
		Venue:            "Main Campus",
		Organizer:        "Cultural Committee",
		Image:            "/assets/fests/aurora.jpg",
		Website:          "https://aurora.campus.edu",
		Expected:         5000,
		Highlights:       []string{"Pro-night headliner", "Battle of bands", "Street play circuit"},
		Tags:             []string{"cultural", "music", "dance"},
	},
	{
		ID:               "fallback-fest-2",
		Name:             "Ignition",
		ShortDescription: "The technical fest: robotics, hackathons and guest lectures.",
		Description:      "Two days of robotics arenas, an open hackathon, paper presentations and talks from industry engineers.",
		Type:             domain.FestTechnical,
		StartDate:        "2025-02-07",
		EndDate:          "2025-02-08",
		Venue:            "Engineering Block",
		Organizer:        "Technical Society",
		Image:            "/assets/fests/ignition.jpg",
		Website:          "https://ignition.campus.edu",
		Expected:         3000,
		Highlights:       []string{"RoboWars arena", "24h hackathon", "Drone racing"},
		Tags:             []string{"technical", "robotics", "hackathon"},
	},
}
