package mapping

// Raw documents mirror the backend's JSON schema, which the backend owns.
// Fields the backend omits decode to their zero value; the mappers treat
// zero strings and nil slices as absent and substitute defaults.

type RawEventSession struct {
	Time  string `json:"time"`
	Title string `json:"title"`
	Venue string `json:"venue"`
}

type RawEventDay struct {
	Day      string            `json:"day"`
	Sessions []RawEventSession `json:"sessions"`
}

type RawEventPhoto struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type RawEvent struct {
	ID               string          `json:"_id"`
	Title            string          `json:"title"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Date             string          `json:"date"`
	EndDate          string          `json:"endDate"`
	Time             string          `json:"time"`
	Location         string          `json:"location"`
	Organizer        string          `json:"organizer"`
	Contact          string          `json:"contact"`
	Attendees        int             `json:"attendees"`
	MaxAttendees     int             `json:"maxAttendees"`
	Image            string          `json:"image"`
	Tags             []string        `json:"tags"`
	Schedule         []RawEventDay   `json:"schedule"`
	Photos           []RawEventPhoto `json:"photos"`
	CreatedAt        string          `json:"createdAt"`
}

type RawDemandUpdate struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

type RawDemand struct {
	ID               string            `json:"_id"`
	Title            string            `json:"title"`
	Topic            string            `json:"topic"`
	ShortDescription string            `json:"shortDescription"`
	Description      string            `json:"description"`
	Status           string            `json:"status"`
	Progress         int               `json:"progress"`
	DateSubmitted    string            `json:"dateSubmitted"`
	SubmittedBy      string            `json:"submittedBy"`
	Supporters       int               `json:"supporters"`
	Updates          []RawDemandUpdate `json:"updates"`
	Tags             []string          `json:"tags"`
	CreatedAt        string            `json:"createdAt"`
}

type RawPyq struct {
	ID          string   `json:"_id"`
	SubjectName string   `json:"subjectName"`
	SubjectCode string   `json:"subjectCode"`
	Year        int      `json:"year"`
	Semester    int      `json:"semester"`
	ExamType    string   `json:"examType"`
	Department  string   `json:"department"`
	FileURL     string   `json:"fileUrl"`
	Tags        []string `json:"tags"`
}

type RawNote struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Subject     string   `json:"subject"`
	SubjectCode string   `json:"subjectCode"`
	Department  string   `json:"department"`
	Semester    int      `json:"semester"`
	FileURL     string   `json:"fileUrl"`
	UploadDate  string   `json:"uploadDate"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
}

type RawFest struct {
	ID               string   `json:"_id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
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

type RawRoomType struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Count    int    `json:"count"`
}

type RawHostel struct {
	ID               string        `json:"_id"`
	Name             string        `json:"name"`
	ShortDescription string        `json:"shortDescription"`
	Type             string        `json:"type"`
	Warden           string        `json:"warden"`
	Contact          string        `json:"contact"`
	Image            string        `json:"image"`
	TotalRooms       int           `json:"totalRooms"`
	Capacity         int           `json:"capacity"`
	RoomTypes        []RawRoomType `json:"roomTypes"`
	Facilities       []string      `json:"facilities"`
	Rules            []string      `json:"rules"`
}

type RawGalleryImage struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	URL          string   `json:"url"`
	Thumbnail    string   `json:"thumbnail"`
	Date         string   `json:"date"`
	Photographer string   `json:"photographer"`
	Likes        int      `json:"likes"`
	Tags         []string `json:"tags"`
}
