package fallback

import "github.com/campusconnect/portal-bff/internal/domain"

var Gallery = []domain.GalleryImage{
	{
		ID:           "fallback-photo-1",
		Title:        "Convocation 2024",
		Category:     domain.GalleryAcademic,
		URL:          "/assets/gallery/convocation-2024.jpg",
		Thumbnail:    "/assets/gallery/thumbs/convocation-2024.jpg",
		Date:         "2024-12-15",
		Photographer: "Campus Media Cell",
		Likes:        134,
		Tags:         []string{"convocation", "graduation"},
	},
	{
		ID:           "fallback-photo-2",
		Title:        "Aurora pro-night crowd",
		Category:     domain.GalleryCultural,
		URL:          "/assets/gallery/aurora-pronight.jpg",
		Thumbnail:    "/assets/gallery/thumbs/aurora-pronight.jpg",
		Date:         "2024-03-23",
		Photographer: "A. Kulkarni",
		Likes:        289,
		Tags:         []string{"aurora", "concert"},
	},
	{
		ID:           "fallback-photo-3",
		Title:        "Winter morning, central lawn",
		Category:     domain.GalleryCampus,
		URL:          "/assets/gallery/central-lawn.jpg",
		Thumbnail:    "/assets/gallery/thumbs/central-lawn.jpg",
		Date:         "2025-01-08",
		Photographer: "Campus Media Cell",
		Likes:        97,
		Tags:         []string{"campus", "winter"},
	},
}
