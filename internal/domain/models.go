package domain

// View models are the frontend-owned projections of backend documents.
// They are derived fresh on every fetch; the portal never treats them as
// authoritative records. Every field is always populated by the mapping
// layer: missing raw values become "NA", a placeholder asset, or a
// seeded default, never a zero-value surprise.

const (
	// NA marks a raw field the backend did not supply.
	NA = "NA"

	// PlaceholderImage is served for documents without an asset URL.
	PlaceholderImage = "/assets/placeholder.jpg"
)

type EventCategory string

const (
	EventTechnical EventCategory = "technical"
	EventCultural  EventCategory = "cultural"
	EventSports    EventCategory = "sports"
	EventAcademic  EventCategory = "academic"
	EventSocial    EventCategory = "social"
)

type EventSession struct {
	Time  string `json:"time"`
	Title string `json:"title"`
	Venue string `json:"venue"`
}

type EventDay struct {
	Day      string         `json:"day"`
	Sessions []EventSession `json:"sessions"`
}

type EventPhoto struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type Event struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	ShortDescription string        `json:"shortDescription"`
	Description      string        `json:"description"`
	Category         EventCategory `json:"category"`
	Date             string        `json:"date"`
	EndDate          string        `json:"endDate"`
	Time             string        `json:"time"`
	Location         string        `json:"location"`
	Organizer        string        `json:"organizer"`
	Contact          string        `json:"contact"`
	Attendees        int           `json:"attendees"`
	MaxAttendees     int           `json:"maxAttendees"`
	Image            string        `json:"image"`
	Tags             []string      `json:"tags"`
	Schedule         []EventDay    `json:"schedule"`
	Photos           []EventPhoto  `json:"photos"`
}

type DemandCategory string

const (
	DemandInfrastructure DemandCategory = "infrastructure"
	DemandAcademic       DemandCategory = "academic"
	DemandFood           DemandCategory = "food"
	DemandSports         DemandCategory = "sports"
	DemandTechnology     DemandCategory = "technology"
	DemandTransport      DemandCategory = "transport"
)

// Demand status values the backend is known to emit. A missing status is
// kept as "NA" rather than guessed.
const (
	StatusPending     = "pending"
	StatusInProgress  = "in-progress"
	StatusApproved    = "approved"
	StatusImplemented = "implemented"
	StatusRejected    = "rejected"
)

type DemandUpdate struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

type Demand struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	ShortDescription string         `json:"shortDescription"`
	Description      string         `json:"description"`
	Category         DemandCategory `json:"category"`
	Status           string         `json:"status"`
	Progress         int            `json:"progress"`
	DateSubmitted    string         `json:"dateSubmitted"`
	SubmittedBy      string         `json:"submittedBy"`
	Supporters       int            `json:"supporters"`
	// Updates keep backend order (chronological as given), never re-sorted.
	Updates []DemandUpdate `json:"updates"`
	Tags    []string       `json:"tags"`
}

type PaperType string

const (
	PaperEndSem     PaperType = "end-sem"
	PaperMidSem     PaperType = "mid-sem"
	PaperAssignment PaperType = "assignment"
	PaperBackPaper  PaperType = "back-paper"
)

type Branch string

const (
	BranchCSE    Branch = "cse"
	BranchECE    Branch = "ece"
	BranchMech   Branch = "mech"
	BranchCivil  Branch = "civil"
	BranchEEE    Branch = "eee"
	BranchCommon Branch = "common"
)

type Pyq struct {
	ID          string    `json:"id"`
	SubjectName string    `json:"subjectName"`
	SubjectCode string    `json:"subjectCode"`
	Year        int       `json:"year"`
	Semester    int       `json:"semester"`
	Type        PaperType `json:"type"`
	Branch      Branch    `json:"branch"`
	Department  string    `json:"department"`
	FileURL     string    `json:"fileUrl"`
	Pages       int       `json:"pages"`
	Downloads   int       `json:"downloads"`
	FileSize    string    `json:"fileSize"`
	Tags        []string  `json:"tags"`
}

type Note struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Branch      Branch   `json:"branch"`
	Semester    int      `json:"semester"`
	Subject     string   `json:"subject"`
	SubjectCode string   `json:"subjectCode"`
	FileURL     string   `json:"fileUrl"`
	UploadDate  string   `json:"uploadDate"`
	Rating      float64  `json:"rating"`
	Views       int      `json:"views"`
	Downloads   int      `json:"downloads"`
	Likes       int      `json:"likes"`
	Pages       int      `json:"pages"`
	FileSize    string   `json:"fileSize"`
	Tags        []string `json:"tags"`
}

type FestType string

const (
	FestTechnical FestType = "technical"
	FestCultural  FestType = "cultural"
	FestSports    FestType = "sports"
)

type Fest struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Type             FestType `json:"type"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Venue            string   `json:"venue"`
	Organizer        string   `json:"organizer"`
	Image            string   `json:"image"`
	Website          string   `json:"website"`
	Expected         int      `json:"expected"`
	Highlights       []string `json:"highlights"`
	Tags             []string `json:"tags"`
}

type HostelType string

const (
	HostelMale   HostelType = "male"
	HostelFemale HostelType = "female"
	HostelMixed  HostelType = "mixed"
)

type RoomType struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Count    int    `json:"count"`
}

type Hostel struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	ShortDescription string     `json:"shortDescription"`
	Type             HostelType `json:"type"`
	Warden           string     `json:"warden"`
	Contact          string     `json:"contact"`
	Image            string     `json:"image"`
	TotalRooms       int        `json:"totalRooms"`
	Capacity         int        `json:"capacity"`
	RoomTypes        []RoomType `json:"roomTypes"`
	Facilities       []string   `json:"facilities"`
	Rules            []string   `json:"rules"`
}

type GalleryCategory string

const (
	GalleryEvents   GalleryCategory = "events"
	GalleryCampus   GalleryCategory = "campus"
	GallerySports   GalleryCategory = "sports"
	GalleryCultural GalleryCategory = "cultural"
	GalleryAcademic GalleryCategory = "academic"
)

type GalleryImage struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Category     GalleryCategory `json:"category"`
	URL          string          `json:"url"`
	Thumbnail    string          `json:"thumbnail"`
	Date         string          `json:"date"`
	Photographer string          `json:"photographer"`
	Likes        int             `json:"likes"`
	Tags         []string        `json:"tags"`
}

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}
