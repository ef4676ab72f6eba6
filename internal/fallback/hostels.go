package fallback

import "github.com/campusconnect/portal-bff/internal/domain"

var Hostels = []domain.Hostel{
	{
		ID:               "fallback-hostel-1",
		Name:             "Aravali Boys Hostel",
		ShortDescription: "Senior boys hostel next to the sports complex.",
		Type:             domain.HostelMale,
		Warden:           "Dr. S. Verma",
		Contact:          "aravali@campus.edu",
		Image:            "/assets/hostels/aravali.jpg",
		TotalRooms:       220,
		Capacity:         440,
		RoomTypes: []domain.RoomType{
			{Name: "Double", Capacity: 2, Count: 180},
			{Name: "Single", Capacity: 1, Count: 40},
		},
		Facilities: []string{"Mess", "Gym", "Reading room", "Laundry"},
		Rules:      []string{"In-time 11pm on weekdays", "Visitors in common room only"},
	},
	{
		ID:               "fallback-hostel-2",
		Name:             "Nilgiri Girls Hostel",
		ShortDescription: "Girls hostel near the academic block with attached mess.",
		Type:             domain.HostelFemale,
		Warden:           "Dr. M. Rao",
		Contact:          "nilgiri@campus.edu",
		Image:            "/assets/hostels/nilgiri.jpg",
		TotalRooms:       180,
		Capacity:         360,
		RoomTypes: []domain.RoomType{
			{Name: "Double", Capacity: 2, Count: 150},
			{Name: "Triple", Capacity: 3, Count: 30},
		},
		Facilities: []string{"Mess", "Common room", "Badminton court", "24x7 security"},
		Rules:      []string{"In-time 10:30pm", "Register guests at the gate"},
	},
}
