package mapping

import "github.com/campusconnect/portal-bff/internal/domain"

// Mappers are total: any raw document, including `{}`, maps to a fully
// populated view model. They never return an error and never pass a
// missing value through.

func orNA(s string) string {
	if s == "" {
		return domain.NA
	}
	return s
}

func orString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// MapEvent normalizes a backend event document. Category is taken from
// the document when it is a known enum value, otherwise inferred from
// the title and description.
func MapEvent(raw RawEvent) domain.Event {
	category := domain.EventCategory(raw.Category)
	switch category {
	case domain.EventTechnical, domain.EventCultural, domain.EventSports,
		domain.EventAcademic, domain.EventSocial:
	default:
		category = EventCategoryOf(raw.Title + " " + raw.Description)
	}

	maxAttendees := raw.MaxAttendees
	if maxAttendees == 0 {
		maxAttendees = 100
	}

	schedule := make([]domain.EventDay, 0, len(raw.Schedule))
	for _, d := range raw.Schedule {
		sessions := make([]domain.EventSession, 0, len(d.Sessions))
		for _, s := range d.Sessions {
			sessions = append(sessions, domain.EventSession{
				Time:  orNA(s.Time),
				Title: orNA(s.Title),
				Venue: orNA(s.Venue),
			})
		}
		schedule = append(schedule, domain.EventDay{Day: orNA(d.Day), Sessions: sessions})
	}

	photos := make([]domain.EventPhoto, 0, len(raw.Photos))
	for _, p := range raw.Photos {
		photos = append(photos, domain.EventPhoto{
			URL:     orString(p.URL, domain.PlaceholderImage),
			Caption: orNA(p.Caption),
		})
	}

	tags := raw.Tags
	if len(tags) == 0 {
		tags = SynthesizeTags(raw.Title, string(category), raw.Organizer)
	}

	return domain.Event{
		ID:               orNA(raw.ID),
		Title:            orNA(raw.Title),
		ShortDescription: orNA(raw.ShortDescription),
		Description:      orNA(raw.Description),
		Category:         category,
		Date:             orNA(raw.Date),
		EndDate:          orString(raw.EndDate, orNA(raw.Date)),
		Time:             orNA(raw.Time),
		Location:         orNA(raw.Location),
		Organizer:        orNA(raw.Organizer),
		Contact:          orNA(raw.Contact),
		Attendees:        raw.Attendees,
		MaxAttendees:     maxAttendees,
		Image:            orString(raw.Image, domain.PlaceholderImage),
		Tags:             tags,
		Schedule:         schedule,
		Photos:           photos,
	}
}

// MapDemand normalizes a student demand. Category comes from keyword
// matching on the free-text topic (falling back to the title), and a
// demand without updates gets a single synthesized "Demand submitted"
// entry so the timeline is never empty.
func MapDemand(raw RawDemand) domain.Demand {
	topic := raw.Topic
	if topic == "" {
		topic = raw.Title
	}
	category := DemandCategoryOf(topic)

	dateSubmitted := orString(raw.DateSubmitted, orNA(raw.CreatedAt))

	updates := make([]domain.DemandUpdate, 0, len(raw.Updates))
	for _, u := range raw.Updates {
		updates = append(updates, domain.DemandUpdate{
			Date:    orNA(u.Date),
			Content: orNA(u.Content),
		})
	}
	if len(updates) == 0 {
		updates = append(updates, domain.DemandUpdate{
			Date:    dateSubmitted,
			Content: "Demand submitted",
		})
	}

	tags := raw.Tags
	if len(tags) == 0 {
		tags = SynthesizeTags(raw.Title, string(category), "")
	}

	return domain.Demand{
		ID:               orNA(raw.ID),
		Title:            orNA(raw.Title),
		ShortDescription: orString(raw.ShortDescription, orNA(raw.Description)),
		Description:      orNA(raw.Description),
		Category:         category,
		Status:           orNA(raw.Status),
		Progress:         clampProgress(raw.Progress),
		DateSubmitted:    dateSubmitted,
		SubmittedBy:      orNA(raw.SubmittedBy),
		Supporters:       raw.Supporters,
		Updates:          updates,
		Tags:             tags,
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// MapPyq normalizes a past question paper. Pages, downloads and file
// size are seeded from the id since the backend never tracked them.
func MapPyq(raw RawPyq) domain.Pyq {
	paperType := PaperTypeOf(raw.ExamType)
	branch := BranchOf(raw.Department)

	tags := raw.Tags
	if len(tags) == 0 {
		tags = SynthesizeTags(raw.SubjectName, string(paperType), raw.Department)
	}

	return domain.Pyq{
		ID:          orNA(raw.ID),
		SubjectName: orNA(raw.SubjectName),
		SubjectCode: orNA(raw.SubjectCode),
		Year:        raw.Year,
		Semester:    raw.Semester,
		Type:        paperType,
		Branch:      branch,
		Department:  orNA(raw.Department),
		FileURL:     raw.FileURL,
		Pages:       seededInt(raw.ID, "pages", 1, 30),
		Downloads:   seededInt(raw.ID, "downloads", 50, 550),
		FileSize:    seededFileSize(raw.ID),
		Tags:        tags,
	}
}

// MapNote normalizes a topper note. A missing title is synthesized from
// the subject and code; rating, views, downloads, likes and page count
// are seeded from the id.
func MapNote(raw RawNote) domain.Note {
	title := raw.Title
	if title == "" {
		switch {
		case raw.Subject != "" && raw.SubjectCode != "":
			title = raw.Subject + " (" + raw.SubjectCode + ")"
		case raw.Subject != "":
			title = raw.Subject
		default:
			title = domain.NA
		}
	}

	branch := BranchOf(raw.Department)

	tags := raw.Tags
	if len(tags) == 0 {
		tags = SynthesizeTags(raw.Subject, "notes", raw.Department)
	}

	return domain.Note{
		ID:          orNA(raw.ID),
		Title:       title,
		Author:      orNA(raw.Author),
		Branch:      branch,
		Semester:    raw.Semester,
		Subject:     orNA(raw.Subject),
		SubjectCode: orNA(raw.SubjectCode),
		FileURL:     raw.FileURL,
		UploadDate:  orString(raw.UploadDate, orNA(raw.CreatedAt)),
		Rating:      seededRating(raw.ID),
		Views:       seededInt(raw.ID, "views", 50, 999),
		Downloads:   seededInt(raw.ID, "downloads", 10, 500),
		Likes:       seededInt(raw.ID, "likes", 5, 104),
		Pages:       seededInt(raw.ID, "pages", 10, 109),
		FileSize:    seededFileSize(raw.ID),
		Tags:        tags,
	}
}

// MapFest normalizes a college fest. Type is inferred from the name and
// description when the document has no recognized type.
func MapFest(raw RawFest) domain.Fest {
	festType := domain.FestType(raw.Type)
	switch festType {
	case domain.FestTechnical, domain.FestCultural, domain.FestSports:
	default:
		festType = FestTypeOf(raw.Name + " " + raw.Description)
	}

	highlights := raw.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	tags := raw.Tags
	if len(tags) == 0 {
		tags = SynthesizeTags(raw.Name, string(festType), raw.Organizer)
	}

	return domain.Fest{
		ID:               orNA(raw.ID),
		Name:             orNA(raw.Name),
		ShortDescription: orString(raw.ShortDescription, orNA(raw.Description)),
		Description:      orNA(raw.Description),
		Type:             festType,
		StartDate:        orNA(raw.StartDate),
		EndDate:          orString(raw.EndDate, orNA(raw.StartDate)),
		Venue:            orNA(raw.Venue),
		Organizer:        orNA(raw.Organizer),
		Image:            orString(raw.Image, domain.PlaceholderImage),
		Website:          orNA(raw.Website),
		Expected:         raw.Expected,
		Highlights:       highlights,
		Tags:             tags,
	}
}

// MapHostel normalizes a hostel. Type falls back to name inference
// ("Girls Hostel" reads as female) when the document has no explicit
// male/female marker.
func MapHostel(raw RawHostel) domain.Hostel {
	hostelType := domain.HostelType(raw.Type)
	switch hostelType {
	case domain.HostelMale, domain.HostelFemale, domain.HostelMixed:
	default:
		hostelType = HostelTypeOf(raw.Name)
	}

	roomTypes := make([]domain.RoomType, 0, len(raw.RoomTypes))
	for _, rt := range raw.RoomTypes {
		roomTypes = append(roomTypes, domain.RoomType{
			Name:     orNA(rt.Name),
			Capacity: rt.Capacity,
			Count:    rt.Count,
		})
	}

	facilities := raw.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	rules := raw.Rules
	if rules == nil {
		rules = []string{}
	}

	return domain.Hostel{
		ID:               orNA(raw.ID),
		Name:             orNA(raw.Name),
		ShortDescription: orNA(raw.ShortDescription),
		Type:             hostelType,
		Warden:           orNA(raw.Warden),
		Contact:          orNA(raw.Contact),
		Image:            orString(raw.Image, domain.PlaceholderImage),
		TotalRooms:       raw.TotalRooms,
		Capacity:         raw.Capacity,
		RoomTypes:        roomTypes,
		Facilities:       facilities,
		Rules:            rules,
	}
}

// MapGalleryImage normalizes a gallery photo. Category is inferred from
// the title when absent; likes default to a seeded count so the grid
// never shows a wall of zeros.
func MapGalleryImage(raw RawGalleryImage) domain.GalleryImage {
	category := domain.GalleryCategory(raw.Category)
	switch category {
	case domain.GalleryEvents, domain.GalleryCampus, domain.GallerySports,
		domain.GalleryCultural, domain.GalleryAcademic:
	default:
		category = GalleryCategoryOf(raw.Title)
	}

	likes := raw.Likes
	if likes == 0 {
		likes = seededInt(raw.ID, "likes", 5, 104)
	}

	url := orString(raw.URL, domain.PlaceholderImage)

	return domain.GalleryImage{
		ID:           orNA(raw.ID),
		Title:        orNA(raw.Title),
		Category:     category,
		URL:          url,
		Thumbnail:    orString(raw.Thumbnail, url),
		Date:         orNA(raw.Date),
		Photographer: orNA(raw.Photographer),
		Likes:        likes,
		Tags:         orTags(raw.Tags),
	}
}
